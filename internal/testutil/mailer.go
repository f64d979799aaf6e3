package testutil

import "sync"

// SentMail is one message captured by the fake mailer.
type SentMail struct {
	From    string
	To      string
	Subject string
	Body    string
}

// FakeMailer records outgoing mail instead of delivering it. Set Err to make
// every Send fail, for exercising the delivery-failure path.
type FakeMailer struct {
	mu   sync.Mutex
	Err  error
	Sent []SentMail
}

func (f *FakeMailer) Send(from, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Sent = append(f.Sent, SentMail{From: from, To: to, Subject: subject, Body: body})
	return nil
}

// SentCount returns how many messages were accepted.
func (f *FakeMailer) SentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Sent)
}
