package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Irfan-005/Bongosorous/sys"

	_ "github.com/Irfan-005/Bongosorous/home"
	_ "github.com/Irfan-005/Bongosorous/proc"
)

const botPIDFile = ".bot.pid"

func main() {
	silent := flag.Bool("silent", false, "Disable all log output")
	skipReg := flag.Bool("skip-reg", false, "Skip command registration")
	flag.Parse()

	sys.InitLogger(*silent, true)

	// Kill any previous instance still holding the PID file
	if pidData, err := os.ReadFile(botPIDFile); err == nil {
		if oldPid, err := strconv.Atoi(string(pidData)); err == nil && oldPid != os.Getpid() {
			if process, err := os.FindProcess(oldPid); err == nil {
				if err := process.Signal(syscall.Signal(0)); err == nil {
					sys.LogInfo("Killing running instance... (PID: %d)", oldPid)
					if err := process.Signal(syscall.SIGTERM); err == nil {
						for i := 0; i < 50; i++ {
							if err := process.Signal(syscall.Signal(0)); err != nil {
								break
							}
							time.Sleep(100 * time.Millisecond)
						}
					}
				}
			}
		}
	}

	if err := os.WriteFile(botPIDFile, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		sys.LogWarn("Failed to write PID file: %v", err)
	}
	defer os.Remove(botPIDFile)

	if err := run(*silent, *skipReg); err != nil {
		sys.LogFatal(sys.MsgGenericError, err)
	}
}

func run(silent bool, skipReg bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	sys.SetAppContext(ctx)

	cfg, err := sys.LoadConfig()
	if err != nil {
		return fmt.Errorf(sys.MsgConfigFailedToLoad, err)
	}

	sys.LogInfo(sys.MsgBotStarting, sys.GetProjectName())

	if err := sys.InitDatabase(ctx, cfg.DatabasePath); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer sys.CloseDatabase()

	client, err := sys.CreateClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create Discord client: %w", err)
	}
	defer client.Close(ctx)

	if skipReg {
		sys.LogInfo("Skipping command registration as requested.")
	} else if err := sys.RegisterCommands(client, cfg.GuildID); err != nil {
		sys.LogError(sys.MsgBotRegisterFail, err)
	}

	if err := client.OpenGateway(ctx); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}

	<-ctx.Done()
	if !silent {
		fmt.Println()
	}

	sys.ShutdownDaemons(context.Background())
	sys.LogInfo(sys.MsgBotShutdown, sys.GetProjectName())

	return nil
}
