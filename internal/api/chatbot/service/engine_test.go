package chatbotService

import (
	"HotelGolang/internal/entity"
	"strings"
	"testing"
)

func newSession(role entity.Role) *entity.ChatSession {
	return &entity.ChatSession{
		ID:       "01TESTSESSION0000000000000",
		UserID:   "01TESTUSER0000000000000000",
		Role:     role,
		Messages: []entity.ChatMessage{WelcomeMessage(role)},
	}
}

func TestWelcomeMessage(t *testing.T) {
	tests := []struct {
		role entity.Role
		want string
	}{
		{entity.RoleAdmin, "Welcome, Admin! Type a command to get started."},
		{entity.RoleReceptionist, "Welcome, Receptionist! Type a command to get started."},
		{entity.RoleGuest, "Welcome, Guest! Type a command to get started."},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			msg := WelcomeMessage(tt.role)
			if msg.Sender != entity.ChatSenderBot {
				t.Errorf("sender = %q, want bot", msg.Sender)
			}
			if msg.Text != tt.want {
				t.Errorf("text = %q, want %q", msg.Text, tt.want)
			}
		})
	}
}

func TestHandleInputRecognizedCommand(t *testing.T) {
	session := newSession(entity.RoleGuest)

	reply := HandleInput(session, "browse rooms")
	if reply == nil {
		t.Fatal("expected a reply")
	}
	if reply.Text != "Here are all available rooms for you to book." {
		t.Errorf("reply = %q", reply.Text)
	}
	if session.PendingPrompt != "Do you want to book a room? (type 'book room')" {
		t.Errorf("pending prompt = %q", session.PendingPrompt)
	}

	// Transcript gains exactly the user message plus one bot reply.
	if got := len(session.Messages); got != 3 {
		t.Fatalf("message count = %d, want 3", got)
	}
	if session.Messages[1].Sender != entity.ChatSenderUser || session.Messages[1].Text != "browse rooms" {
		t.Errorf("user message = %+v", session.Messages[1])
	}
	if session.Messages[2].Text != reply.Text {
		t.Errorf("last message = %q, want reply text", session.Messages[2].Text)
	}
}

func TestHandleInputNormalizesLookupKeepsRawTranscript(t *testing.T) {
	session := newSession(entity.RoleGuest)

	raw := "  Browse ROOMS  "
	reply := HandleInput(session, raw)
	if reply == nil {
		t.Fatal("expected a reply")
	}
	if reply.Text != "Here are all available rooms for you to book." {
		t.Errorf("normalized lookup failed, reply = %q", reply.Text)
	}
	if session.Messages[1].Text != raw {
		t.Errorf("transcript stores %q, want raw %q", session.Messages[1].Text, raw)
	}
}

func TestHandleInputFollowUpConsumesOneTurn(t *testing.T) {
	session := newSession(entity.RoleGuest)

	if reply := HandleInput(session, "browse rooms"); reply == nil {
		t.Fatal("expected a reply to the command")
	}

	// The next input is echoed back with the prompt, even when it is
	// itself a recognized command.
	reply := HandleInput(session, "book room")
	if reply == nil {
		t.Fatal("expected a follow-up reply")
	}
	want := `Received: "book room". Do you want to book a room? (type 'book room')`
	if reply.Text != want {
		t.Errorf("reply = %q, want %q", reply.Text, want)
	}
	if session.PendingPrompt != "" {
		t.Errorf("pending prompt not cleared: %q", session.PendingPrompt)
	}

	// Back at idle, commands resolve normally again.
	reply = HandleInput(session, "book room")
	if reply == nil {
		t.Fatal("expected a reply after follow-up resolved")
	}
	if reply.Text != "Please provide the room ID you want to book:" {
		t.Errorf("reply = %q", reply.Text)
	}
}

func TestHandleInputUnrecognizedCommand(t *testing.T) {
	session := newSession(entity.RoleReceptionist)

	reply := HandleInput(session, "order pizza")
	if reply == nil {
		t.Fatal("expected a reply")
	}
	if reply.Text != "Sorry, I don't recognize that command." {
		t.Errorf("reply = %q", reply.Text)
	}
	if session.PendingPrompt != "" {
		t.Errorf("unrecognized input must not arm a follow-up, got %q", session.PendingPrompt)
	}
}

func TestHandleInputRoleTablesAreDisjoint(t *testing.T) {
	tests := []struct {
		name  string
		role  entity.Role
		input string
	}{
		{"guest cannot view users", entity.RoleGuest, "view users"},
		{"receptionist cannot browse rooms", entity.RoleReceptionist, "browse rooms"},
		{"admin cannot view bookings", entity.RoleAdmin, "view bookings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newSession(tt.role)
			reply := HandleInput(session, tt.input)
			if reply == nil {
				t.Fatal("expected a reply")
			}
			if reply.Text != "Sorry, I don't recognize that command." {
				t.Errorf("reply = %q, want fallback", reply.Text)
			}
		})
	}
}

func TestHandleInputBlankInputIsNoOp(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		session := newSession(entity.RoleAdmin)
		before := len(session.Messages)

		if reply := HandleInput(session, input); reply != nil {
			t.Errorf("input %q produced reply %q, want none", input, reply.Text)
		}
		if len(session.Messages) != before {
			t.Errorf("input %q changed transcript length", input)
		}
	}
}

func TestHandleInputEveryTurnYieldsOneBotReply(t *testing.T) {
	session := newSession(entity.RoleAdmin)
	inputs := []string{"view users", "yes", "view rooms", "no thanks", "garbage", "view sales report"}

	for _, input := range inputs {
		before := len(session.Messages)
		if reply := HandleInput(session, input); reply == nil {
			t.Fatalf("input %q produced no reply", input)
		}
		if got := len(session.Messages) - before; got != 2 {
			t.Fatalf("input %q appended %d messages, want 2", input, got)
		}
		if last := session.Messages[len(session.Messages)-1]; last.Sender != entity.ChatSenderBot {
			t.Fatalf("input %q: last message sender = %q, want bot", input, last.Sender)
		}
	}
}

func TestWorkflowTablesMatchScript(t *testing.T) {
	wantCommands := map[entity.Role][]string{
		entity.RoleAdmin:        {"view users", "add user", "remove user", "view rooms", "update room", "view sales report"},
		entity.RoleReceptionist: {"view bookings", "update booking", "cancel booking", "check-ins", "manage bookings"},
		entity.RoleGuest:        {"browse rooms", "book room", "my bookings", "help"},
	}

	for role, commands := range wantCommands {
		t.Run(string(role), func(t *testing.T) {
			table := workflows[role]
			if len(table) != len(commands) {
				t.Errorf("table size = %d, want %d", len(table), len(commands))
			}
			for _, cmd := range commands {
				step, ok := table[cmd]
				if !ok {
					t.Errorf("missing command %q", cmd)
					continue
				}
				if step.Response == "" {
					t.Errorf("command %q has empty response", cmd)
				}
				if cmd != strings.ToLower(strings.TrimSpace(cmd)) {
					t.Errorf("command key %q is not normalized", cmd)
				}
			}
		})
	}
}
