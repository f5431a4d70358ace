package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// SessionsViewCmd views a specific session
type SessionsViewCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	ID     int    `arg:"" help:"ID of the session to view"`
}

// sessionDetail is the session with what happened during it
type sessionDetail struct {
	Interruptions []domain.Interruption `json:"interruptions" yaml:"interruptions"`
	Session       *domain.Session       `json:"session" yaml:"session"`
}

// Run executes the view command
func (s *SessionsViewCmd) Run(cli *CLI) error {
	ctx := context.Background()

	session, err := cli.Container.SessionService.GetSession(ctx, s.ID)
	if err != nil {
		return err
	}
	interruptions, err := cli.Container.InterruptionService.ListForSession(ctx, s.ID)
	if err != nil {
		return err
	}

	detail := sessionDetail{Interruptions: interruptions, Session: session}
	if done, err := printStructured(s.Format, detail); done {
		return err
	}

	s.printTable(detail, time.Now())
	return nil
}

func (s *SessionsViewCmd) printTable(d sessionDetail, now time.Time) {
	sess := d.Session
	fmt.Printf("Session: #%d\n", sess.ID)
	fmt.Printf("Started: %s\n", sess.StartTime.Local().Format("2006-01-02 15:04:05"))
	if sess.EndTime != nil {
		fmt.Printf("Ended: %s\n", sess.EndTime.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Duration: %s\n", domain.FormatSessionDuration(*sess))
	} else {
		fmt.Printf("Ended: <running>\n")
		fmt.Printf("Elapsed: %s\n", domain.FormatDuration(sess.Duration(now)))
	}

	if len(d.Interruptions) == 0 {
		fmt.Println("\nNo interruptions.")
		return
	}

	var lost int // seconds
	fmt.Printf("\nInterruptions (%d):\n", len(d.Interruptions))
	fmt.Println(strings.Repeat(tableRule, 45))
	for _, in := range d.Interruptions {
		lost += in.Duration
		fmt.Printf("%s  %-9s %6s  %s\n",
			in.StartTime.Local().Format("15:04"),
			in.Type,
			domain.FormatDuration(time.Duration(in.Duration)*time.Second),
			in.Description)
	}
	fmt.Println(strings.Repeat(tableRule, 45))
	fmt.Printf("Time lost: %s\n", domain.FormatDuration(time.Duration(lost)*time.Second))
}
