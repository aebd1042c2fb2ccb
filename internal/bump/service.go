package bump

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nenelobo/NeneloBot_Go/internal/gacha"
	"github.com/nenelobo/NeneloBot_Go/internal/logger"
	"github.com/nenelobo/NeneloBot_Go/internal/metrics"
	"github.com/nenelobo/NeneloBot_Go/internal/store"
)

// EmojiSet maps tiers to the display assets shown in draw results. The
// mapping is injected configuration, not a literal of this package.
type EmojiSet map[gacha.Tier]string

// ReminderSender posts the bump-available reminder when a cycle completes.
// The discord layer implements it with holiday-aware thread routing.
type ReminderSender interface {
	SendReminder(ctx context.Context, target time.Time) error
}

// Sender posts plain messages; the gacha result flow uses it.
type Sender interface {
	SendMessage(channelID, content string) (messageID string, err error)
}

// ChannelRenamer is an optional Sender capability. Collaborators that can
// rename their display channel implement it; everything else is skipped
// instead of probed method-by-method.
type ChannelRenamer interface {
	RenameChannel(channelID, name string) error
}

// Channel names the bump channel cycles through.
const (
	channelNameIdle   = "🕹｜command"
	channelNameBumpMe = "🕹｜please-bump!"
)

// Service owns the bump cycle: it reacts to bump-success triggers, drives
// the countdown, runs the bump gacha, and resumes a persisted cycle at
// startup. All cross-cutting state lives here rather than in package-level
// variables.
type Service struct {
	store     *store.Store
	scheduler *Scheduler
	clock     Clock
	sender    Sender
	reminder  ReminderSender
	src       gacha.RandomSource
	emoji     EmojiSet
	channelID string
}

// NewService wires the bump service. src may be nil for the default random
// source.
func NewService(st *store.Store, sched *Scheduler, clock Clock, sender Sender, reminder ReminderSender, emoji EmojiSet, channelID string, src gacha.RandomSource) *Service {
	if src == nil {
		src = gacha.DefaultSource()
	}
	return &Service{
		store:     st,
		scheduler: sched,
		clock:     clock,
		sender:    sender,
		reminder:  reminder,
		src:       src,
		emoji:     emoji,
		channelID: channelID,
	}
}

// storeFlags adapts the store to the scheduler's notified-flag collaborator.
type storeFlags struct {
	s *store.Store
}

func (f storeFlags) Notified(ctx context.Context) bool {
	rec, ok := f.s.LoadCycle(ctx)
	return ok && rec.Notified
}

func (f storeFlags) MarkNotified(ctx context.Context) {
	f.s.MarkNotified(ctx)
}

// NewFlags returns the persisted notified-flag view over the store.
func NewFlags(s *store.Store) CycleFlags { return storeFlags{s: s} }

// HandleBumpSuccess fixes the next bump instant, persists the new cycle,
// starts the countdown display, and runs the bump gacha session.
func (s *Service) HandleBumpSuccess(ctx context.Context, guildID string) error {
	log := logger.FromContext(ctx)

	target := s.clock.Now().Add(Cooldown)
	log.Info(LogMsgBumpDetected, "guild", guildID, "next_bump", target)

	s.store.SaveCycle(ctx, store.CycleRecord{NextBump: target, Notified: false, GuildID: guildID})
	metrics.BumpCycles.Inc()
	s.renameChannel(ctx, channelNameIdle)

	display := Display{
		ChannelID: s.channelID,
		Title:     "Bumped, thank you!",
		Render:    s.renderCountdown(target),
	}
	if err := s.scheduler.Start(ctx, target, display, s.notifyExpired); err != nil {
		return fmt.Errorf("failed to start countdown: %w", err)
	}

	s.runBumpGacha(ctx)
	return nil
}

// Resume restores a persisted cycle at startup. A future deadline with the
// notification still pending re-enters a running countdown with a fresh
// display; a past deadline fires the notification path immediately.
func (s *Service) Resume(ctx context.Context) {
	log := logger.FromContext(ctx)

	rec, ok := s.store.LoadCycle(ctx)
	if !ok || rec.Notified {
		return
	}

	if rec.NextBump.After(s.clock.Now()) {
		log.Info(LogMsgResumingCycle, "next_bump", rec.NextBump)
		display := Display{
			ChannelID: s.channelID,
			Title:     "Next bump",
			Render:    s.renderCountdown(rec.NextBump),
		}
		if err := s.scheduler.Start(ctx, rec.NextBump, display, s.notifyExpired); err != nil {
			log.Error(LogMsgDisplayCreateFailed, "error", err)
		}
		return
	}

	log.Info(LogMsgCycleAlreadyDue, "next_bump", rec.NextBump)
	if err := s.notifyExpired(ctx); err == nil {
		s.store.MarkNotified(ctx)
	}
}

func (s *Service) renderCountdown(target time.Time) func(string) string {
	return func(remaining string) string {
		return fmt.Sprintf("You can bump again at %s\nRemaining: %s",
			target.Format(time.RFC1123), remaining)
	}
}

func (s *Service) notifyExpired(ctx context.Context) error {
	log := logger.FromContext(ctx)

	rec, _ := s.store.LoadCycle(ctx)
	if err := s.reminder.SendReminder(ctx, rec.NextBump); err != nil {
		log.Error(LogMsgNotifyFailed, "error", err)
		return err
	}
	s.renameChannel(ctx, channelNameBumpMe)
	return nil
}

func (s *Service) renameChannel(ctx context.Context, name string) {
	renamer, ok := s.sender.(ChannelRenamer)
	if !ok {
		return
	}
	if err := renamer.RenameChannel(s.channelID, name); err != nil {
		logger.FromContext(ctx).Warn("Failed to rename channel", "name", name, "error", err)
	}
}

// runBumpGacha advances the lifetime counter, draws a full session with the
// milestone rule for that count, and posts the result breakdown with its
// exact probability and the cumulative totals.
func (s *Service) runBumpGacha(ctx context.Context) {
	log := logger.FromContext(ctx)

	year := s.clock.Now().Year()
	totals, ok := s.store.LoadTotals(ctx, year)
	rolledOver := !ok && s.store.HasTotals(ctx, year-1)

	totals.Count++
	rule := gacha.RuleForCount(totals.Count)

	res, err := gacha.DrawSessionWithRule(gacha.SessionFull, rule, s.src)
	if err != nil {
		log.Error("Draw session failed", "error", err)
		return
	}

	recordSessionMetrics(res)

	prob, err := gacha.ProbabilityOf(res.Tally.WithoutFinal(res.FinalTier), res.FinalTier, res.GuaranteeActive)
	if err != nil {
		log.Error("Probability calculation failed", "error", err)
		return
	}

	totals.AddSession(res.Tally)
	s.store.SaveTotals(ctx, year, totals)

	if rolledOver {
		log.Info(LogMsgTotalsReset, "year", year)
		s.send(ctx, "Happy new year! The bump gacha counters start fresh.")
	}

	header := fmt.Sprintf("Bump gacha #%d", totals.Count)
	if special := milestoneText(rule); special != "" {
		header += "\n" + special
	}
	s.send(ctx, header)
	s.send(ctx, s.renderRows(res.Sequence))
	s.send(ctx, s.renderEvaluation(res.Tally, prob))
	s.send(ctx, renderTotals(totals))
}

func (s *Service) send(ctx context.Context, content string) {
	log := logger.FromContext(ctx)
	if _, err := s.sender.SendMessage(s.channelID, content); err != nil {
		log.Warn("Failed to send gacha message", "error", err)
	}
}

func milestoneText(rule gacha.FinalDrawRule) string {
	switch rule {
	case gacha.RuleForcedFeatured:
		return "Featured epic guaranteed!"
	case gacha.RuleForcedEpic:
		return "Epic guaranteed! (standard 98.8% / featured 1.2%)"
	default:
		return ""
	}
}

// renderRows lays the session out as two rows of five.
func (s *Service) renderRows(sequence []gacha.Tier) string {
	symbols := make([]string, 0, len(sequence))
	for _, tier := range sequence {
		symbols = append(symbols, s.emoji[tier])
	}
	half := len(symbols) / 2
	return strings.Join(symbols[:half], " ") + "\n" + strings.Join(symbols[half:], " ")
}

func (s *Service) renderEvaluation(tally gacha.Tally, prob float64) string {
	var lines []string
	if tally.StandardEpic > 0 {
		lines = append(lines, fmt.Sprintf("Standard epics: %d", tally.StandardEpic))
	}
	if tally.FeaturedEpic > 0 {
		lines = append(lines, fmt.Sprintf("Featured epics: %d", tally.FeaturedEpic))
	}
	lines = append(lines, fmt.Sprintf("🎲 The odds of this exact spread: about %s%%", gacha.FormatPercent(prob)))
	return strings.Join(lines, "\n")
}

func renderTotals(t store.Totals) string {
	return fmt.Sprintf("Bump gacha running totals\n"+
		"> Common..........%d\n"+
		"> Rare............%d\n"+
		"> Epic (standard).%d\n"+
		"> Epic (featured).%d",
		t.Common, t.Rare, t.StandardEpic, t.FeaturedEpic)
}

func recordSessionMetrics(res gacha.SessionResult) {
	metrics.GachaSessions.WithLabelValues(fmt.Sprint(len(res.Sequence))).Inc()
	for _, tier := range res.Sequence {
		metrics.GachaDraws.WithLabelValues(tier.String()).Inc()
	}
}
