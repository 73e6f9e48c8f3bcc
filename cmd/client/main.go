package main

import (
	"blackjack-server/pkg/protocol"
	"blackjack-server/pkg/wire"
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pterm/pterm"
)

// how long to wait for the first narration after an intent, and for the rest of the batch
const replyWait = time.Second * 2
const batchWait = time.Millisecond * 250

var addr = flag.String("addr", "127.0.0.1:23716", "the dealer address")
var intents = flag.String("intents", "", "comma separated intents to play, e.g. \"New Hand,Hit,Stay,Disconnect\"; prompts when empty")

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	spinner, _ := pterm.DefaultSpinner.Start("Connecting to " + *addr + " ...")
	dialCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	stream, err := wire.Dial(dialCtx, *addr)
	cancel()
	if err != nil {
		spinner.Fail(err.Error())
		os.Exit(1)
	}
	defer stream.Close()
	spinner.Success("Connected to " + *addr)

	go func() {
		<-ctx.Done()
		_ = stream.Close()
	}()

	narrations := make(chan string, 16)
	go readLoop(stream, narrations)

	next := prompt
	if *intents != "" {
		next = scripted(strings.Split(*intents, ","))
	}

	if !display(narrations) {
		return
	}

	for {
		intent, ok := next()
		if !ok {
			intent = string(protocol.IntentDisconnect)
		}

		if err := stream.Send(intent); err != nil {
			pterm.Error.Printfln("could not send %s: %v", intent, err)
			return
		}

		pterm.Println(pterm.Gray(">>> " + intent))
		if !display(narrations) {
			pterm.Println("Thank you for playing...")
			return
		}
	}
}

func readLoop(stream *wire.Stream, narrations chan<- string) {
	defer close(narrations)
	for {
		msg, err := stream.Receive()
		if err != nil {
			return
		}

		narrations <- msg
	}
}

// display prints the narrations answering a single intent
// It returns false once the dealer has said goodbye or the connection has ended.
func display(narrations <-chan string) bool {
	wait := replyWait
	for {
		select {
		case msg, ok := <-narrations:
			if !ok {
				pterm.Warning.Println("connection terminated")
				return false
			}

			if msg == string(protocol.IntentDisconnect) {
				return false
			}

			printNarration(msg)
			wait = batchWait
		case <-time.After(wait):
			return true
		}
	}
}

func printNarration(msg string) {
	switch {
	case strings.Contains(msg, "you win"):
		pterm.Success.Println(msg)
	case strings.Contains(msg, "you lost"):
		pterm.Error.Println(msg)
	case strings.Contains(msg, "you tied"):
		pterm.Warning.Println(msg)
	default:
		pterm.Info.Println(msg)
	}
}

func scripted(list []string) func() (string, bool) {
	return func() (string, bool) {
		if len(list) == 0 {
			return "", false
		}

		intent := strings.TrimSpace(list[0])
		list = list[1:]
		return intent, true
	}
}

func prompt() (string, bool) {
	options := make([]string, 0, len(protocol.Intents))
	for _, intent := range protocol.Intents {
		options = append(options, string(intent))
	}

	choice, err := pterm.DefaultInteractiveSelect.WithOptions(options).Show()
	if err != nil {
		return "", false
	}

	return choice, true
}
