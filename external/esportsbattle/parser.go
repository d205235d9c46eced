package esportsbattle

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
)

// parseMatches extracts every well-formed match card from a scraped page.
// Malformed cards are skipped, never abort the batch.
func (c *Client) parseMatches(html string) []match.Observation {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		c.logger.Debug("parse document failed", "error", err)
		return nil
	}

	out := make([]match.Observation, 0, 16)
	doc.Find(".match-card").Each(func(_ int, card *goquery.Selection) {
		obs, ok := c.parseCard(card)
		if !ok {
			return
		}
		out = append(out, obs)
	})

	return out
}

func (c *Client) parseCard(card *goquery.Selection) (match.Observation, bool) {
	leftPlayer := cardText(card, ".left .player-name")
	rightPlayer := cardText(card, ".right .player-name")
	leftTeam := cardText(card, ".left .team-name")
	rightTeam := cardText(card, ".right .team-name")
	if leftPlayer == "" || rightPlayer == "" || leftTeam == "" || rightTeam == "" {
		c.logger.Debug("skip malformed match card",
			"player_left", leftPlayer,
			"player_right", rightPlayer,
		)
		return match.Observation{}, false
	}

	status := cardText(card, ".status")
	if status == "" {
		status = "Planned"
	}

	goalsLeft, goalsRight := parseScore(cardText(card, ".score"))
	league := cardText(card, ".league")
	stadium := cardText(card, ".stadium")
	timeText := cardText(card, ".time")
	timestamp := c.parseKickoff(timeText)

	matchID := cardAttr(card, "data-match-id")
	if matchID == "" {
		matchID = cardAttr(card, "id")
	}
	if matchID == "" {
		matchID = synthesizeMatchID(leftPlayer, rightPlayer, leftTeam, rightTeam, league, timeText)
	}

	return match.Observation{
		MatchID:     matchID,
		PlayerLeft:  leftPlayer,
		PlayerRight: rightPlayer,
		TeamLeft:    leftTeam,
		TeamRight:   rightTeam,
		GoalsLeft:   goalsLeft,
		GoalsRight:  goalsRight,
		Status:      status,
		League:      league,
		Stadium:     stadium,
		Timestamp:   timestamp,
	}, true
}

// parseScore splits a "2:1" score text. Partial scores are not trusted: when
// either side fails to parse both goals stay unset.
func parseScore(text string) (*int, *int) {
	if !strings.Contains(text, ":") {
		return nil, nil
	}

	parts := strings.SplitN(text, ":", 2)
	left, errLeft := strconv.Atoi(strings.TrimSpace(parts[0]))
	right, errRight := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errLeft != nil || errRight != nil {
		return nil, nil
	}

	return &left, &right
}

// parseKickoff combines an HH:MM wall-clock text with today's date. Parse
// failures leave the timestamp unset, never fail the card.
func (c *Client) parseKickoff(text string) *time.Time {
	if text == "" {
		return nil
	}

	clock, err := time.ParseInLocation("15:04", text, c.loc)
	if err != nil {
		return nil
	}

	now := c.now().In(c.loc)
	ts := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, c.loc)
	return &ts
}

// synthesizeMatchID builds a best-effort identifier when the source omits
// one. It may collide or drift across scrapes if the source reformats any
// input field, so uniqueness downstream is always composite with the player.
func synthesizeMatchID(leftPlayer, rightPlayer, leftTeam, rightTeam, league, timeText string) string {
	return fmt.Sprintf("%s-%s-%s-%s-%s-%s",
		leftPlayer,
		rightPlayer,
		truncate(leftTeam, 10),
		truncate(rightTeam, 10),
		league,
		timeText,
	)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func cardText(card *goquery.Selection, selector string) string {
	return strings.TrimSpace(card.Find(selector).First().Text())
}

func cardAttr(card *goquery.Selection, name string) string {
	value, _ := card.Attr(name)
	return strings.TrimSpace(value)
}
