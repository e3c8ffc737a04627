package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"log"

	"github.com/chzyer/readline"
	"github.com/robertkrimen/isatty"
	"github.com/vilterp/gdlint/pkg"
)

var url = flag.String("url", "ws://localhost:9000/ws", "URL of gdlint server to connect to")

func main() {
	// get cmdline flags
	flag.Parse()

	// connect to server
	client, connErr := gdlint.NewClient(*url)
	if connErr != nil {
		fmt.Println("couldn't connect:", connErr)
		os.Exit(1)
		return
	}
	defer client.Close()

	// Wait for server closing
	go waitForServerClose(client)

	// check if is TTY
	isInputTty := isatty.Check(os.Stdin.Fd())

	if isInputTty {
		fmt.Println("gdlint shell")
		fmt.Println("\\h for help")
	}

	// initialize readline
	prompt := ""
	if isInputTty {
		prompt = fmt.Sprintf("%s> ", *url)
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       "/tmp/.gdlint-history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye!",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	// lines of the rulesheet being typed; a blank line submits it
	var buffer []string

	for {
		line, readlineErr := l.Readline()
		if readlineErr != nil {
			fmt.Println("bye!")
			os.Exit(0)
		}

		// TODO: factor these out into a commands dict or something
		if line == `\h` {
			fmt.Println(`\h	help`)
			fmt.Println(`\f FILE	validate the rulesheet in FILE`)
			fmt.Println(`or type a rulesheet; a blank line submits it`)
			continue
		}
		if strings.HasPrefix(line, `\f`) {
			path := strings.Trim(strings.TrimPrefix(line, `\f`), "\t ")
			contents, readErr := os.ReadFile(path)
			if readErr != nil {
				fmt.Println("error:", readErr)
				continue
			}
			runValidation(client, string(contents))
			continue
		}

		if len(strings.Trim(line, "\t ")) == 0 {
			if len(buffer) > 0 {
				runValidation(client, strings.Join(buffer, "\n"))
				buffer = nil
			}
			continue
		}

		buffer = append(buffer, line)
	}
}

func waitForServerClose(client *gdlint.Client) {
	<-client.ServerClosed
	log.Println("server closed the connection")
	// TODO: just reset the connection
	os.Exit(0)
}

func runValidation(client *gdlint.Client, rulesheet string) {
	verdict, err := client.Validate(rulesheet)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printVerdict(verdict)
}

func printVerdict(verdict *gdlint.Verdict) {
	if verdict.Valid {
		fmt.Println("valid")
	} else {
		fmt.Println("invalid:", verdict.Error)
	}
	for _, warning := range verdict.Warnings {
		fmt.Println("warning:", warning.String())
	}
}
