package server

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("render-123", messageChan)

	logger.Printf("%s\n", "Test log message")

	select {
	case msg := <-messageChan:
		if msg.Message != "Test log message\n" {
			t.Errorf("Expected message 'Test log message\\n', got '%s'", msg.Message)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if msg.RenderID != "render-123" {
			t.Errorf("Expected render ID 'render-123', got '%s'", msg.RenderID)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	default:
		t.Error("Expected a console message on the channel")
	}
}

func TestWebLogger_MultipleMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("render-456", messageChan)

	messages := []string{"Message 1", "Message 2", "Message 3"}
	for _, msg := range messages {
		logger.Printf("%s\n", msg)
	}

	if len(messageChan) != len(messages) {
		t.Fatalf("Expected %d queued messages, got %d", len(messages), len(messageChan))
	}
	for i, expected := range messages {
		msg := <-messageChan
		if msg.Message != expected+"\n" {
			t.Errorf("Message %d: expected '%s\\n', got '%s'", i, expected, msg.Message)
		}
	}
}

func TestWebLogger_ChannelFull(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("render-789", messageChan)

	// The second and third messages are dropped, not blocked on
	logger.Printf("Message 1\n")
	logger.Printf("Message 2\n")
	logger.Printf("Message 3\n")

	if len(messageChan) != 1 {
		t.Fatalf("Expected 1 queued message, got %d", len(messageChan))
	}
	if msg := <-messageChan; msg.Message != "Message 1\n" {
		t.Errorf("Expected the first message to be kept, got '%s'", msg.Message)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("render-nil", nil)

	// Must not panic
	logger.Printf("Test message with nil channel\n")
}

func TestWebLogger_FormattedMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("render-format", messageChan)

	logger.Printf("Rendering %s (%d cubes)\n", "skyblock", 15)

	msg := <-messageChan
	if expected := "Rendering skyblock (15 cubes)\n"; msg.Message != expected {
		t.Errorf("Expected formatted message '%s', got '%s'", expected, msg.Message)
	}
}

func TestConsoleMessage_JSON(t *testing.T) {
	msg := ConsoleMessage{RenderID: "abc", Message: "line\n", Timestamp: time.Now(), Level: "info"}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// SSE data must stay on one line
	if strings.Contains(string(data), "\n") {
		t.Errorf("Encoded message contains a raw newline: %s", data)
	}
	for _, key := range []string{`"renderId":"abc"`, `"message":"line\n"`, `"level":"info"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Expected %s in %s", key, data)
		}
	}
}
