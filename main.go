// Command careerladder scrapes football career histories and builds
// Career Ladder puzzle data from them.
package main

import "github.com/gaurav-prasanna/careerladder/cmd"

func main() {
	cmd.Execute()
}
