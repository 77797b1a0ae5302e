package main

import "tilestream/internal/viewer"

func main() {
	viewer.Run()
}
