package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/skratchdot/open-golang/open"
	"github.com/ttacon/chalk"
	"golang.org/x/sync/errgroup"

	"scoreboard/config"
	"scoreboard/console"
	"scoreboard/network"
	"scoreboard/session"
	"scoreboard/store"
)

func main() {
	config.InitConfig()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "front end: web or console")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "web listen address")
	flag.StringVar(&cfg.SavePath, "file", cfg.SavePath, "JSON file mirroring the scores")
	flag.BoolVar(&cfg.OpenBrowser, "open", cfg.OpenBrowser, "open the web page in a browser")
	noColor := flag.Bool("no-color", !cfg.Color, "disable coloured console output")
	flag.Parse()
	cfg.Color = !*noColor

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	fs, err := store.NewFileStore(cfg.SavePath)
	if err != nil {
		log.Fatal(err)
	}
	sess := session.Startup(fs)
	logColor(cfg.Color, chalk.Green, "all values cleared, mirroring to "+fs.Path())

	switch cfg.Mode {
	case config.ModeConsole:
		err = runConsole(cfg, sess)
	default:
		err = runWeb(cfg, sess)
	}
	if err != nil {
		logColor(cfg.Color, chalk.Red, err.Error())
		os.Exit(1)
	}
}

// runConsole returns on exit, end of input or an interrupt. Every change is
// already on disk by then, so an interrupt needs no extra save.
func runConsole(cfg config.Config, sess *session.Session) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- console.New(sess, os.Stdin, os.Stdout, console.WithColor(cfg.Color)).Run()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		fmt.Println()
		return nil
	}
}

func runWeb(cfg config.Config, sess *session.Session) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := session.NewHub(sess)
	go hub.Run()
	defer func() {
		hub.Stop()
		<-hub.Done()
	}()

	srv := network.NewServer(cfg.Addr, hub)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(gctx)
	})
	if cfg.OpenBrowser {
		g.Go(func() error {
			url := browserURL(cfg.Addr)
			if err := open.Run(url); err != nil {
				log.Printf("could not open %s: %v", url, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// browserURL turns a listen address such as ":8501" into a local URL.
func browserURL(addr string) string {
	host := addr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	return fmt.Sprintf("http://%s/", host)
}

func logColor(on bool, c chalk.Color, msg string) {
	if !on {
		log.Println(msg)
		return
	}
	log.Println(c.Color(msg))
}
