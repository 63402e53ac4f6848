// Command study renders lecture notes and tutor answers in the terminal and
// talks to the lecture assistant backend.
//
// Usage:
//
//	study render [files|globs...]      render Markdown (stdin when no files)
//	study lectures                     list lectures
//	study lecture ID                   show a lecture transcript
//	study ask --lecture ID QUESTION    ask the tutor once
//	study chat --topic ID              interactive tutor chat
//	study login --email EMAIL          start a session
//	study logout                       end the session
//
// Configuration is read from study.{yaml,toml,json} in $XDG_CONFIG_HOME/study,
// ~/.config/study or the working directory, then from STUDY_* environment
// variables, then from flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "study: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd(newApp(os.Stdin, os.Stdout, os.Stderr)).ExecuteContext(ctx)
}
