package cmd

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/wristlab/timeline/calendar"
	"github.com/wristlab/timeline/monitoring"
	"github.com/wristlab/timeline/peek"
	"github.com/wristlab/timeline/service"
	"github.com/wristlab/timeline/store"
)

var (
	dbPath      string
	monitorPort int
	openBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scheduling service until interrupted.",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func init() {
	serveCmd.Flags().StringVar(&dbPath, "db", "",
		"item database path, without the .sqlite3 suffix")
	serveCmd.Flags().IntVar(&monitorPort, "monitor-port", 0,
		"monitoring server port, 0 picks a random one")
	serveCmd.Flags().BoolVar(&openBrowser, "open-browser", false,
		"open the monitoring API in the default browser")

	rootCmd.AddCommand(serveCmd)
}

// loadEnv fills unset flags from the environment, .env file included.
func loadEnv() {
	_ = godotenv.Load()

	if dbPath == "" {
		dbPath = os.Getenv("TIMELINE_DB")
	}

	if monitorPort == 0 {
		if p, err := strconv.Atoi(
			os.Getenv("TIMELINE_MONITOR_PORT")); err == nil {
			monitorPort = p
		}
	}
}

func serve() {
	loadEnv()

	itemStore := store.NewSQLiteStore(dbPath)

	calendarSub := calendar.New()
	peekSub := peek.New()

	scheduler := service.MakeBuilder().
		WithStore(itemStore).
		WithServices(calendarSub, peekSub).
		Build()

	scheduler.AcceptHook(service.NewEventLogger(
		log.New(os.Stderr, "timeline ", log.LstdFlags)))

	if d, err := time.ParseDuration(
		os.Getenv("TIMELINE_PEEK_SHOW_BEFORE")); err == nil {
		peekSub.SetShowBefore(d)
	}

	monitor := monitoring.NewMonitor()
	monitor.RegisterScheduler(scheduler)
	monitor.RegisterService(calendarSub)
	monitor.RegisterService(peekSub)
	monitor.WithPortNumber(monitorPort)
	if openBrowser {
		monitor.WithBrowserOnStart()
	}
	monitor.StartServer()

	scheduler.RequestRefresh()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	scheduler.Shutdown()
	atexit.Exit(0)
}
