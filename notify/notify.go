package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/gregkash16/ncx-sub000/db"
	"github.com/gregkash16/ncx-sub000/model"
)

// MatchEvent describes a score write that just landed in the workbook.
type MatchEvent struct {
	Week       string         `json:"week"`
	Game       int            `json:"game"`
	AwayTeam   string         `json:"awayTeam"`
	HomeTeam   string         `json:"homeTeam"`
	AwayPlayer string         `json:"awayPlayer"`
	HomePlayer string         `json:"homePlayer"`
	AwayScore  int            `json:"awayScore"`
	HomeScore  int            `json:"homeScore"`
	Scenario   model.Scenario `json:"scenario"`
	ReportedBy string         `json:"reportedBy"`
}

// Notifier fans a reported match out to the side channels. Implementations
// never return an error: every delivery is best effort and the report is
// already committed by the time this runs.
type Notifier interface {
	MatchReported(ctx context.Context, evt *MatchEvent)
}

// fanoutTimeout bounds the whole fan-out. All three channels share it.
const fanoutTimeout = 10 * time.Second

type fanout struct {
	db           db.DB
	overlayURL   string
	webhookURL   string
	vapidPublic  string
	vapidPrivate string
	vapidSubject string
	httpClient   *http.Client
}

// New creates a Notifier. Channels whose settings are empty are skipped, so
// a deployment without an overlay or webhook simply fans out to fewer places.
func New(db db.DB, overlayURL, webhookURL, vapidPublic, vapidPrivate, vapidSubject string) Notifier {
	return &fanout{
		db:           db,
		overlayURL:   overlayURL,
		webhookURL:   webhookURL,
		vapidPublic:  vapidPublic,
		vapidPrivate: vapidPrivate,
		vapidSubject: vapidSubject,
		httpClient:   &http.Client{Timeout: fanoutTimeout},
	}
}

func (n *fanout) MatchReported(ctx context.Context, evt *MatchEvent) {
	ctx, cancel := context.WithTimeout(ctx, fanoutTimeout)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		n.postOverlay(ctx, evt)
	}()
	go func() {
		defer wg.Done()
		n.postWebhook(ctx, evt)
	}()
	go func() {
		defer wg.Done()
		n.pushToSubscribers(ctx, evt)
	}()
	wg.Wait()
}

func (n *fanout) postOverlay(ctx context.Context, evt *MatchEvent) {
	if n.overlayURL == "" {
		return
	}

	payload := map[string]any{
		"action":    "match_reported",
		"week":      evt.Week,
		"game":      evt.Game,
		"awayTeam":  evt.AwayTeam,
		"homeTeam":  evt.HomeTeam,
		"awayScore": evt.AwayScore,
		"homeScore": evt.HomeScore,
		"scenario":  evt.Scenario,
	}
	if err := n.postJSON(ctx, n.overlayURL, payload); err != nil {
		log.Printf("overlay notification failed: %v", err)
	}
}

func (n *fanout) postWebhook(ctx context.Context, evt *MatchEvent) {
	if n.webhookURL == "" {
		return
	}

	msg := fmt.Sprintf("%s game %d: %s (%s) %d - %d (%s) %s on %s, reported by %s",
		evt.Week, evt.Game,
		evt.AwayTeam, evt.AwayPlayer, evt.AwayScore,
		evt.HomeScore, evt.HomePlayer, evt.HomeTeam,
		evt.Scenario, evt.ReportedBy)
	if err := n.postJSON(ctx, n.webhookURL, map[string]any{"content": msg}); err != nil {
		log.Printf("webhook notification failed: %v", err)
	}
}

func (n *fanout) postJSON(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (n *fanout) pushToSubscribers(ctx context.Context, evt *MatchEvent) {
	if n.vapidPublic == "" || n.vapidPrivate == "" {
		return
	}

	subs, err := n.db.Subscribers(ctx)
	if err != nil {
		log.Printf("error loading push subscribers: %v", err)
		return
	}

	body, err := json.Marshal(evt)
	if err != nil {
		log.Printf("error encoding push payload: %v", err)
		return
	}

	for i := range subs {
		s := &subs[i]
		if !s.InterestedIn(evt.AwayTeam, evt.HomeTeam) {
			continue
		}
		n.pushOne(ctx, s, body)
	}
}

func (n *fanout) pushOne(ctx context.Context, s *model.PushSubscriber, body []byte) {
	sub := &webpush.Subscription{
		Endpoint: s.Endpoint,
		Keys: webpush.Keys{
			P256dh: s.P256dh,
			Auth:   s.Auth,
		},
	}
	opts := &webpush.Options{
		Subscriber:      n.vapidSubject,
		VAPIDPublicKey:  n.vapidPublic,
		VAPIDPrivateKey: n.vapidPrivate,
		TTL:             60,
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, sub, opts)
	if err != nil {
		log.Printf("push delivery failed for %s: %v", s.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	// A gone endpoint is the signal to drop the subscriber entry.
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		if err := n.db.DeleteSubscriber(ctx, s.Endpoint); err != nil {
			log.Printf("error deleting gone subscriber %s: %v", s.Endpoint, err)
		}
	}
}
