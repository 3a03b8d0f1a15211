package utils

import (
	"fmt"
	"os"
)

func WriteTxt[V, T any](filename string, data []T, f func(T) V) error {

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	for _, element := range data {
		_, err := fmt.Fprintln(file, f(element))
		if err != nil {
			return fmt.Errorf("failed to write file: %v", err)
		}
	}

	return nil
}
