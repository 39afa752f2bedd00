package chatbotService

import "HotelGolang/internal/entity"

// workflowStep is one recognized command: the canned response and an
// optional follow-up prompt that arms the next turn.
type workflowStep struct {
	Response string
	Next     string
}

// workflows holds the per-role dialogue script. Keys are lowercased,
// trimmed command strings; the tables are disjoint across roles.
var workflows = map[entity.Role]map[string]workflowStep{
	entity.RoleAdmin: {
		"view users": {
			Response: "Here’s the list of users.",
			Next:     "Do you want to add or remove a user? (type 'add user' or 'remove user')",
		},
		"add user": {
			Response: "Please provide the new user's name:",
		},
		"remove user": {
			Response: "Please provide the user's ID to remove:",
		},
		"view rooms": {
			Response: "Here’s the status of all rooms.",
			Next:     "Do you want to update a room status? (type 'update room')",
		},
		"update room": {
			Response: "Please provide the room ID and new status:",
		},
		"view sales report": {
			Response: "Generating the sales report for you...",
		},
	},
	entity.RoleReceptionist: {
		"view bookings": {
			Response: "Here’s the list of today’s bookings.",
			Next:     "Do you want to update or cancel a booking? (type 'update booking' or 'cancel booking')",
		},
		"update booking": {
			Response: "Please provide the booking ID to update:",
		},
		"cancel booking": {
			Response: "Please provide the booking ID to cancel:",
		},
		"check-ins": {
			Response: "Here are the guests checking in today.",
		},
		"manage bookings": {
			Response: "You can manage bookings here.",
		},
	},
	entity.RoleGuest: {
		"browse rooms": {
			Response: "Here are all available rooms for you to book.",
			Next:     "Do you want to book a room? (type 'book room')",
		},
		"book room": {
			Response: "Please provide the room ID you want to book:",
		},
		"my bookings": {
			Response: "Here’s your booking history.",
		},
		"help": {
			Response: "You can type commands like 'browse rooms' or 'my bookings'.",
		},
	},
}
