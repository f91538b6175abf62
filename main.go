package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/tinwind/deckprov/entity"
	"github.com/tinwind/deckprov/internal"
	"github.com/tinwind/deckprov/provision"
)

type args struct {
	File     string `arg:"-f,--file" help:"manifest file overriding the built-in one"`
	LogLevel int    `arg:"-l,--loglevel" default:"4"`
	Yes      bool   `arg:"-y,--yes" help:"reboot without prompting on completion"`
}

func (args) Version() string {
	return "deckprov 0.1.0"
}

func main() {
	var args args
	arg.MustParse(&args)
	internal.InitLogging(args.LogLevel)

	isRoot, err := internal.IsUserRoot()
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	if !isRoot {
		fmt.Println("This installer must be run as root")
		os.Exit(1)
	}

	config, err := entity.UnmarshalConfig(args.File)
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	p := provision.Provisioner{Config: config, AssumeYes: args.Yes}
	if err = p.Apply(); err != nil {
		// Exit with the failing command's code when one is known.
		var cmdErr internal.CmdError
		if errors.As(err, &cmdErr) && cmdErr.Code > 0 {
			log.Printf("%v\n", err)
			os.Exit(cmdErr.Code)
		}
		log.Fatalf("%v\n", err)
	}
}
