package bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// fakeAPI records what the bot sends and answers with canned data
type fakeAPI struct {
	mu sync.Mutex

	member     tgbotapi.ChatMember
	memberErr  error
	admins     []tgbotapi.ChatMember
	sendErr    error
	requestErr error
	block      chan struct{}

	sent      []tgbotapi.Chattable
	requested []tgbotapi.Chattable

	updates chan tgbotapi.Update
	stopped bool
}

func (f *fakeAPI) wait() {
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeAPI) GetChatMember(tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	f.wait()
	return f.member, f.memberErr
}

func (f *fakeAPI) GetChatAdministrators(tgbotapi.ChatAdministratorsConfig) ([]tgbotapi.ChatMember, error) {
	return f.admins, nil
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.wait()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.wait()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.requested = append(f.requested, c)
	if f.requestErr != nil {
		return nil, f.requestErr
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeAPI) StopReceivingUpdates() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

// texts returns the text of every plain message sent so far
func (f *fakeAPI) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg.Text)
		}
	}
	return out
}
