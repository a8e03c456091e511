package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer sends marketplace notification mail through SES.
type Mailer struct {
	client *ses.Client
	source string
}

func NewMailer() (*Mailer, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &Mailer{
		client: ses.NewFromConfig(cfg),
		source: os.Getenv("SES_EMAIL"),
	}, nil
}

// generic SES sender
func (m *Mailer) send(to string, subject string, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.source),
	}

	_, err := m.client.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendClaimNotification tells a generator that part of their listing was claimed.
func (m *Mailer) SendClaimNotification(to, listingTitle, claimerName, quantity string) error {
	subject := fmt.Sprintf("Your listing %q was claimed", listingTitle)
	body := fmt.Sprintf("%s claimed %s from your listing %q.\n\nOpen your dashboard for contact details and the remaining quantity.",
		claimerName, quantity, listingTitle)
	return m.send(to, subject, body)
}

// SendRatingNotification tells a generator about a new rating.
func (m *Mailer) SendRatingNotification(to, listingTitle string, stars int) error {
	subject := "You received a new rating"
	body := fmt.Sprintf("A farmer rated their order from %q: %d/5 stars.", listingTitle, stars)
	return m.send(to, subject, body)
}
