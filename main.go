package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"

	"github.com/gregkash16/ncx-sub000/controller"
	"github.com/gregkash16/ncx-sub000/db"
	"github.com/gregkash16/ncx-sub000/notify"
	"github.com/gregkash16/ncx-sub000/platforms/lbn"
	"github.com/gregkash16/ncx-sub000/platforms/yasb"
	"github.com/gregkash16/ncx-sub000/web"
	"github.com/gregkash16/ncx-sub000/workbook"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	sheetID := os.Getenv("SHEET_ID")
	if sheetID == "" {
		log.Fatalf("SHEET_ID must be set")
	}
	credentials := os.Getenv("GOOGLE_CREDENTIALS_JSON")
	if credentials == "" {
		log.Fatalf("GOOGLE_CREDENTIALS_JSON must be set")
	}
	adminID := os.Getenv("ADMIN_DISCORD_ID")

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	wb, err := workbook.New(context.Background(), sheetID, []byte(credentials))
	if err != nil {
		log.Fatalf("error creating workbook client: %v", err)
	}

	notifier := notify.New(db,
		os.Getenv("OVERLAY_URL"),
		os.Getenv("DISCORD_WEBHOOK_URL"),
		os.Getenv("VAPID_PUBLIC_KEY"),
		os.Getenv("VAPID_PRIVATE_KEY"),
		os.Getenv("VAPID_SUBJECT"))

	ctrl, err := controller.New(clock, db, wb, yasb.New(), lbn.New(), notifier, adminID)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that refreshes the read models from the workbook every
	// 15 minutes.
	wg.Add(1)
	go ctrl.RunPeriodicSync(15*time.Minute, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
