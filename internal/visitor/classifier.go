package visitor

import (
	"strings"

	ua "github.com/mileusna/useragent"
	"github.com/samber/lo"
)

// Visitor is the outcome of classifying a request's user-agent.
type Visitor int

const (
	// Human visitors are shown the transition page on first visit.
	Human Visitor = iota
	// Agent covers crawlers, link-preview fetchers and unfurlers; they
	// are redirected immediately and never see the transition page.
	Agent
)

// ClassifierFunc classifies a raw User-Agent header value.
type ClassifierFunc func(userAgent string) Visitor

// agentSignatures are matched case-insensitively as substrings. They
// cover fetchers the user-agent parser does not flag as bots, mostly
// social-media unfurlers.
var agentSignatures = []string{
	"googlebot",
	"bingbot",
	"yandexbot",
	"duckduckbot",
	"baiduspider",
	"slurp",
	"facebookexternalhit",
	"facebot",
	"twitterbot",
	"linkedinbot",
	"slackbot",
	"discordbot",
	"telegrambot",
	"whatsapp",
	"skypeuripreview",
	"pinterestbot",
	"embedly",
	"vkshare",
	"crawler",
	"spider",
}

// Classify decides whether a user-agent belongs to an automated agent.
// An absent or unrecognized user-agent is treated as Human, so unknown
// clients see the transition page rather than a silent redirect.
func Classify(userAgent string) Visitor {
	if userAgent == "" {
		return Human
	}

	if ua.Parse(userAgent).Bot {
		return Agent
	}

	lower := strings.ToLower(userAgent)
	if lo.SomeBy(agentSignatures, func(sig string) bool {
		return strings.Contains(lower, sig)
	}) {
		return Agent
	}

	return Human
}
