package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      Visitor
	}{
		{
			name:      "desktop chrome",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/74.0.3729.169 Safari/537.36",
			want:      Human,
		},
		{
			name:      "iphone safari",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Mobile/15E148 Safari/604.1",
			want:      Human,
		},
		{
			name:      "googlebot",
			userAgent: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			want:      Agent,
		},
		{
			name:      "bingbot",
			userAgent: "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)",
			want:      Agent,
		},
		{
			name:      "slack unfurler",
			userAgent: "Slackbot-LinkExpanding 1.0 (+https://api.slack.com/robots)",
			want:      Agent,
		},
		{
			name:      "facebook unfurler",
			userAgent: "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)",
			want:      Agent,
		},
		{
			name:      "twitter unfurler",
			userAgent: "Twitterbot/1.0",
			want:      Agent,
		},
		{
			name:      "telegram preview",
			userAgent: "TelegramBot (like TwitterBot)",
			want:      Agent,
		},
		{
			name:      "whatsapp preview",
			userAgent: "WhatsApp/2.19.81 A",
			want:      Agent,
		},
		{
			name:      "signature match is case-insensitive",
			userAgent: "GOOGLEBOT/2.1",
			want:      Agent,
		},
		{
			name:      "absent user-agent defaults to human",
			userAgent: "",
			want:      Human,
		},
		{
			name:      "unrecognized user-agent defaults to human",
			userAgent: "definitely-not-a-browser/0.1",
			want:      Human,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.userAgent))
		})
	}
}
