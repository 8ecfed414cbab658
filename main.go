package main

import "github.com/Thrinath17/FitTrack/cmd/fittrack"

func main() {
	fittrack.Execute()
}
