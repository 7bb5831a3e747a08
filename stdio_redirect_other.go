//go:build !unix

package main

import "os"

// redirectStdIO swaps the os.Stdout/os.Stderr handles. Runtime panics still go
// to the original stderr here.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout, os.Stderr = f, f
	return nil
}
