package labfolder

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp is a time.Time that decodes leniently. The API emits RFC 3339
// values with fractional seconds, but some records predate that guarantee,
// so a missing or malformed value becomes the zero time instead of failing
// the surrounding payload.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil
	}
	t.Time = parsed
	return nil
}

// User is a labfolder account. GroupMembershipID is only populated for users
// taken from a group tree; it identifies the user's membership in that group
// and is the value ownership transfers and membership removals operate on.
type User struct {
	ID                string
	GroupMembershipID string
	FirstName         string
	LastName          string
	Email             string
}

func (u User) String() string {
	return fmt.Sprintf("%s %s <%s>", u.FirstName, u.LastName, u.Email)
}

// userPayload is the wire shape for user objects. The API returns either a
// bare user or a membership envelope of the form {"id": ..., "user": {...}},
// where the outer id belongs to the enclosing context rather than the user.
// Group trees nest one level deep; the expanded /me profile does too.
type userPayload struct {
	ID        string       `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Email     string       `json:"email"`
	User      *userPayload `json:"user"`
}

// user flattens the payload into a User, descending through envelopes. The
// envelope id is deliberately not carried over: it only means "membership id"
// when the envelope came from a group tree, which is memberUser's job.
func (p userPayload) user() User {
	if p.User != nil {
		return p.User.user()
	}
	return User{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
}

// memberUser flattens a group-tree child, recording the envelope id as the
// member's group-membership id.
func (p userPayload) memberUser() User {
	u := p.user()
	if p.User != nil {
		u.GroupMembershipID = p.ID
	}
	return u
}

// Group is a labfolder group together with its member users.
type Group struct {
	ID      string
	Name    string
	Members []User
}

func (g Group) String() string {
	return g.Name
}

// MemberByID looks up a member by user id.
func (g *Group) MemberByID(id string) (User, bool) {
	for _, m := range g.Members {
		if m.ID == id {
			return m, true
		}
	}
	return User{}, false
}

// MemberByEmail looks up a member by email address.
func (g *Group) MemberByEmail(email string) (User, bool) {
	for _, m := range g.Members {
		if m.Email == email {
			return m, true
		}
	}
	return User{}, false
}

// groupPayload is the wire shape of a group tree. Children are membership
// envelopes wrapping the member users.
type groupPayload struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Children []userPayload `json:"children"`
}

func (p groupPayload) group() Group {
	g := Group{
		ID:   p.ID,
		Name: p.Name,
	}
	for _, child := range p.Children {
		g.Members = append(g.Members, child.memberUser())
	}
	return g
}
