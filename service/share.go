package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/advisorhub/agentcrm/models"
)

// Outbound messages are prepared here but never sent: the presentation layer
// opens the returned wa.me URL itself.

const advisorHubBase = "https://my-insurance-hub.com/advisor/"

// AdvisorCardLink is the public link to the advisor's digital visiting card.
func AdvisorCardLink(agent models.Agent) string {
	return advisorHubBase + strings.ReplaceAll(agent.Name, " ", "-")
}

// BuildCardShare prepares the "share my card" message.
func BuildCardShare(agent models.Agent) models.ShareMessage {
	link := AdvisorCardLink(agent)
	message := fmt.Sprintf(
		"Hello! I'm sharing my digital visiting card with you. Feel free to reach out for any insurance needs.\n\n*%s*\n%s\n\nView my card: %s",
		agent.Name, agent.Title, link,
	)
	return models.ShareMessage{
		Link:        link,
		Message:     message,
		WhatsAppURL: "https://wa.me/?text=" + url.QueryEscape(message),
	}
}

// BuildInvites prepares one personalized invite per contact.
func BuildInvites(agent models.Agent, contacts []models.InviteContact) []models.ShareMessage {
	link := AdvisorCardLink(agent)

	out := make([]models.ShareMessage, 0, len(contacts))
	for _, contact := range contacts {
		firstName := contact.Name
		if i := strings.IndexByte(firstName, ' '); i >= 0 {
			firstName = firstName[:i]
		}

		message := fmt.Sprintf(`Hello %s,

I hope you are doing well!

As your trusted insurance advisor, I am here to provide you with complete protection solutions for you and your family. I deal in all types of insurance products to secure your health, wealth, and future:

- Health Insurance - Covers hospital bills & medical emergencies.
- Life Term Insurance - Ensures your loved ones are financially secure, even in your absence.
- Investment Plans - Helps you build wealth with guaranteed returns.
- Motor Insurance - Safeguards your vehicles against accidents, damage, and third-party liabilities.

You can view my digital card and contact me here: %s`, firstName, link)

		phone := strings.NewReplacer(" ", "", "+", "").Replace(contact.Phone)
		out = append(out, models.ShareMessage{
			Name:        contact.Name,
			Phone:       contact.Phone,
			Link:        link,
			Message:     message,
			WhatsAppURL: "https://wa.me/" + phone + "?text=" + url.QueryEscape(message),
		})
	}
	return out
}
