package notifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Notifier interface {
	Enabled() bool
	Send(ctx context.Context, email Email) error
}

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESNotifier sends mail through Amazon SES. Without a sender address it only logs.
type SESNotifier struct {
	client   sesAPI
	from     string
	fromName string
	log      *logrus.Logger
}

func NewSESNotifier(ctx context.Context, v *viper.Viper, log *logrus.Logger) (*SESNotifier, error) {
	from := v.GetString("email.from")
	if from == "" {
		log.Info("email notifier disabled: email.from not configured")
		return &SESNotifier{log: log}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(v.GetString("email.region")))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.WithField("from", from).Info("email notifier enabled")
	return &SESNotifier{
		client:   sesv2.NewFromConfig(cfg),
		from:     from,
		fromName: v.GetString("email.from_name"),
		log:      log,
	}, nil
}

func (s *SESNotifier) Enabled() bool {
	return s.client != nil
}

func (s *SESNotifier) Send(ctx context.Context, email Email) error {
	if !s.Enabled() {
		s.log.WithField("to", email.To).WithField("subject", email.Subject).Info("skipping email (notifier disabled)")
		return nil
	}

	fromAddress := s.from
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.from)
	}

	body := &types.Body{
		Text: &types.Content{
			Data:    aws.String(email.Text),
			Charset: aws.String("UTF-8"),
		},
	}
	if email.HTML != "" {
		body.Html = &types.Content{
			Data:    aws.String(email.HTML),
			Charset: aws.String("UTF-8"),
		}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{email.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(email.Subject),
					Charset: aws.String("UTF-8"),
				},
				Body: body,
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", email.To, err)
	}
	return nil
}
