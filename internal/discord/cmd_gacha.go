package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/nenelobo/NeneloBot_Go/internal/bump"
	"github.com/nenelobo/NeneloBot_Go/internal/gacha"
	"github.com/nenelobo/NeneloBot_Go/internal/metrics"
)

const hundredPullSessions = 10

// GachaCommand returns the gacha command definition and handler. Draws go
// through the injected source so the command shares one stream with the
// bump gacha.
func GachaCommand(src gacha.RandomSource, emoji bump.EmojiSet) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gacha",
		Description: "Draw the gacha!",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "pulls",
				Description: "Number of draws (1, 10 or 100)",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "1 draw", Value: 1},
					{Name: "10 draws", Value: 10},
					{Name: "100 draws", Value: 100},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		options := getOptions(i)
		pulls := int(options[0].IntValue())

		user := getInteractionUser(i)
		slog.Info("Gacha command", "user", user.Username, "pulls", pulls)

		switch pulls {
		case 1:
			handleSingleDraw(s, i, src, emoji)
		case 10:
			handleTenDraw(s, i, src, emoji)
		case 100:
			handleHundredDraw(s, i, src, emoji)
		default:
			respondText(s, i, MsgGachaBadPulls, true)
		}
	}

	return cmd, handler
}

func handleSingleDraw(s *discordgo.Session, i *discordgo.InteractionCreate, src gacha.RandomSource, emoji bump.EmojiSet) {
	res, err := gacha.DrawSession(gacha.SessionSingle, src)
	if err != nil {
		slog.Error("Draw session failed", "error", err)
		respondText(s, i, "The gacha machine jammed. Try again.", true)
		return
	}
	recordDraws(res)

	respondText(s, i, emoji[res.Sequence[0]], false)
	if summary := epicSummary(res.Tally); summary != "" {
		followUpText(s, i, summary, false)
	}
}

func handleTenDraw(s *discordgo.Session, i *discordgo.InteractionCreate, src gacha.RandomSource, emoji bump.EmojiSet) {
	res, err := gacha.DrawSession(gacha.SessionFull, src)
	if err != nil {
		slog.Error("Draw session failed", "error", err)
		respondText(s, i, "The gacha machine jammed. Try again.", true)
		return
	}
	recordDraws(res)

	prob, err := gacha.ProbabilityOf(res.Tally.WithoutFinal(res.FinalTier), res.FinalTier, res.GuaranteeActive)
	if err != nil {
		slog.Error("Probability calculation failed", "error", err)
		respondText(s, i, renderSequenceRows(res.Sequence, emoji), false)
		return
	}

	respondText(s, i, renderSequenceRows(res.Sequence, emoji), false)

	var lines []string
	if summary := epicSummary(res.Tally); summary != "" {
		lines = append(lines, summary)
	}
	lines = append(lines, fmt.Sprintf("🎲 The odds of this exact spread: about %s%%", gacha.FormatPercent(prob)))
	followUpText(s, i, strings.Join(lines, "\n"), false)
}

// handleHundredDraw runs ten full sessions, each with its own guarantee,
// streams the rows as ephemeral follow-ups, and swaps the placeholder embed
// for the aggregate once done.
func handleHundredDraw(s *discordgo.Session, i *discordgo.InteractionCreate, src gacha.RandomSource, emoji bump.EmojiSet) {
	respondEmbed(s, i, createEmbed(MsgDrawingHundred, "", ColorGrey))

	var total gacha.Tally
	for n := 0; n < hundredPullSessions; n++ {
		res, err := gacha.DrawSession(gacha.SessionFull, src)
		if err != nil {
			slog.Error("Draw session failed", "error", err)
			respondError(s, i, "The gacha machine jammed. Try again.")
			return
		}
		recordDraws(res)

		for _, tier := range res.Sequence {
			total.Add(tier)
		}
		followUpText(s, i, renderSequenceRow(res.Sequence, emoji), true)
	}

	breakdown := fmt.Sprintf(
		"> Common..........%d\n> Rare............%d\n> Epic (standard).%d\n> Epic (featured).%d",
		total.Common, total.Rare, total.StandardEpic, total.FeaturedEpic)
	editResponseEmbed(s, i, createEmbed(MsgHundredDone, breakdown, ColorGreen))
}

// renderSequenceRows lays a session out as two rows of five.
func renderSequenceRows(sequence []gacha.Tier, emoji bump.EmojiSet) string {
	symbols := make([]string, 0, len(sequence))
	for _, tier := range sequence {
		symbols = append(symbols, emoji[tier])
	}
	half := len(symbols) / 2
	return strings.Join(symbols[:half], " ") + "\n" + strings.Join(symbols[half:], " ")
}

func renderSequenceRow(sequence []gacha.Tier, emoji bump.EmojiSet) string {
	symbols := make([]string, 0, len(sequence))
	for _, tier := range sequence {
		symbols = append(symbols, emoji[tier])
	}
	return strings.Join(symbols, " ")
}

func epicSummary(tally gacha.Tally) string {
	var lines []string
	if tally.StandardEpic > 0 {
		lines = append(lines, fmt.Sprintf("Standard epics: %d", tally.StandardEpic))
	}
	if tally.FeaturedEpic > 0 {
		lines = append(lines, fmt.Sprintf("Featured epics: %d", tally.FeaturedEpic))
	}
	return strings.Join(lines, "\n")
}

func recordDraws(res gacha.SessionResult) {
	metrics.GachaSessions.WithLabelValues(fmt.Sprint(len(res.Sequence))).Inc()
	for _, tier := range res.Sequence {
		metrics.GachaDraws.WithLabelValues(tier.String()).Inc()
	}
}
