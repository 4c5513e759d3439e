package communication

import (
	"fmt"
	"log"

	"github.com/slack-go/slack"
)

// Notifier reports operational events to people watching a channel.
type Notifier interface {
	Info(message string) error
	Error(message string) error
}

type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	Token          string `yaml:"token"`
	InfoChannelID  string `yaml:"info_channel"`
	ErrorChannelID string `yaml:"error_channel"`
}

// New returns a Slack notifier when a token is configured, and a log-only
// notifier otherwise.
func New(options SlackOption, opts ...slack.Option) Notifier {
	if options.Token == "" {
		return LogNotifier{}
	}
	return NewSlack(options, opts...)
}

func NewSlack(options SlackOption, opts ...slack.Option) *Slack {
	return &Slack{client: slack.New(options.Token, opts...), options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	if channelID == "" {
		return nil
	}
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	return s.postMessage(s.options.InfoChannelID, message)
}

func (s *Slack) Error(message string) error {
	return s.postMessage(s.options.ErrorChannelID, message)
}

type LogNotifier struct{}

func (LogNotifier) Info(message string) error {
	log.Printf("[INFO] %s", message)
	return nil
}

func (LogNotifier) Error(message string) error {
	log.Printf("[ERROR] %s", message)
	return nil
}
