// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"crypto/rand"
	"crypto/sha1"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli"
	"golang.org/x/crypto/pbkdf2"

	"github.com/xtaci/lwcrypt/std"
)

const (
	// SALT is the PBKDF2 salt used to stretch --pass, shared with kcp-go.
	SALT = "kcp-go"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "cryptctl"
	myApp.Usage = "lightweight block cipher suite"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log",
			Value: "",
			Usage: "specify a log file to output, default goes to stderr",
		},
		cli.StringFlag{
			Name:  "c",
			Value: "", // when the value is not empty, the config path must exists
			Usage: "config from json file, which will override the command from shell",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "suppress warnings",
		},
	}

	cryptFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "crypt",
			Value: std.DefaultMethod,
			Usage: "cipher method, see the list command",
		},
		cli.StringFlag{
			Name:  "key",
			Usage: "raw key in hex, must match the method's key size",
		},
		cli.StringFlag{
			Name:   "pass",
			Usage:  "passphrase, stretched with PBKDF2 when --key is not given",
			EnvVar: "CRYPTCTL_PASS",
		},
		cli.StringFlag{
			Name:  "block",
			Usage: "one or more blocks in hex, processed independently",
		},
	}

	myApp.Commands = []cli.Command{
		{
			Name:  "list",
			Usage: "list cipher methods with key and block sizes",
			Action: func(c *cli.Context) error {
				loadConfig(c)
				return listMethods(os.Stdout)
			},
		},
		{
			Name:  "kat",
			Usage: "run the known-answer vectors",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "crypt",
					Usage: "only check this method",
				},
			},
			Action: func(c *cli.Context) error {
				config := loadConfig(c)
				failed, err := runKAT(os.Stdout, config.Crypt)
				checkError(err)
				if failed > 0 {
					return cli.NewExitError(fmt.Sprintf("kat: %d vector(s) failed", failed), 1)
				}
				return nil
			},
		},
		{
			Name:   "encrypt",
			Usage:  "encrypt raw blocks",
			Flags:  cryptFlags,
			Action: func(c *cli.Context) error { return crypt(c, false) },
		},
		{
			Name:   "decrypt",
			Usage:  "decrypt raw blocks",
			Flags:  cryptFlags,
			Action: func(c *cli.Context) error { return crypt(c, true) },
		},
		{
			Name:  "echo",
			Usage: "send a payload over a loopback KCP session encrypted with the method",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "crypt",
					Value: std.DefaultMethod,
					Usage: "cipher method, see the list command",
				},
				cli.StringFlag{
					Name:   "pass",
					Value:  "it's a secrect",
					Usage:  "pre-shared secret of both session ends",
					EnvVar: "CRYPTCTL_PASS",
				},
				cli.IntFlag{
					Name:  "size",
					Value: 1 << 20,
					Usage: "payload size in bytes",
				},
				cli.IntFlag{
					Name:  "timeout",
					Value: 30,
					Usage: "give up after this many seconds",
				},
				cli.StringFlag{
					Name:  "snmplog",
					Usage: "append kcp counters to this csv file afterwards, eg: ./snmp-20060102.log",
				},
			},
			Action: echo,
		},
	}
	checkError(myApp.Run(os.Args))
}

// loadConfig collects the flags of c, applies the json config on top and
// redirects the log when asked to.
func loadConfig(c *cli.Context) Config {
	config := Config{}
	config.Crypt = c.String("crypt")
	config.Key = c.String("key")
	config.Pass = c.String("pass")
	config.Log = c.GlobalString("log")
	config.Quiet = c.GlobalBool("quiet")

	if c.GlobalString("c") != "" {
		err := parseJSONConfig(&config, c.GlobalString("c"))
		checkError(err)
	}

	if config.Log != "" {
		f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		checkError(err)
		log.SetOutput(f)
	}
	return config
}

func crypt(c *cli.Context, decrypt bool) error {
	config := loadConfig(c)

	key, err := deriveKey(config.Crypt, &config)
	checkError(err)
	if config.Key == "" && !config.Quiet {
		color.Yellow("WARNING: deriving the key from a passphrase, use --key to pass raw key bytes.")
	}

	block, err := std.NewBlock(config.Crypt, key)
	checkError(err)
	log.Println("encryption:", config.Crypt)

	src, err := parseHex(c.String("block"))
	checkError(err)
	dst, err := cryptBlocks(block, src, decrypt)
	checkError(err)

	fmt.Printf("%x\n", dst)
	return nil
}

func echo(c *cli.Context) error {
	config := loadConfig(c)
	if c.Int("size") <= 0 {
		log.Fatal("size must be greater than 0")
	}

	log.Println("initiating key derivation")
	pass := pbkdf2.Key([]byte(config.Pass), []byte(SALT), 4096, 32, sha1.New)
	log.Println("key derivation done")

	payload := make([]byte, c.Int("size"))
	_, err := rand.Read(payload)
	checkError(err)

	rtt, err := std.Loopback(config.Crypt, pass, payload, time.Duration(c.Int("timeout"))*time.Second)
	checkError(err)
	log.Println("encryption:", config.Crypt)
	fmt.Printf("%s: %d bytes echoed in %v (%.2f MB/s)\n", config.Crypt, len(payload), rtt,
		float64(2*len(payload))/rtt.Seconds()/(1<<20))

	if path := c.String("snmplog"); path != "" {
		checkError(std.WriteSnmp(path))
	}
	return nil
}

func checkError(err error) {
	if err != nil {
		log.Printf("%+v\n", err)
		os.Exit(-1)
	}
}
