package labfolder

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetGroup fetches a group's membership tree. The returned group does not
// become the session's active group; use SelectGroup for that.
func (c *Client) GetGroup(ctx context.Context, id string) (*Group, error) {
	if err := c.checkLoggedIn(); err != nil {
		return nil, err
	}

	var payload groupPayload
	err := c.do(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/groups/" + url.PathEscape(id) + "/tree",
		status: http.StatusOK,
	}, &payload)
	if err != nil {
		return nil, err
	}

	g := payload.group()
	return &g, nil
}

// SelectGroup fetches a group and makes it the session's active group. When
// the authenticated user appears in the membership tree, their membership id
// is recorded on the session profile, so it is available as a transfer
// target via Me.
func (c *Client) SelectGroup(ctx context.Context, id string) (*Group, error) {
	g, err := c.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}

	c.group = g
	if member, ok := g.MemberByID(c.me.ID); ok {
		c.me.GroupMembershipID = member.GroupMembershipID
	}

	c.logger.Info("selected group", "group", g.Name, "id", g.ID)
	return c.ActiveGroup(), nil
}

func checkMembership(u User) error {
	if u.GroupMembershipID == "" {
		return fmt.Errorf("%w: %s", ErrNoGroupMembership, u.Email)
	}
	return nil
}

// RemoveGroupMember removes user from their group by deleting the
// membership. The user must carry a group-membership id, which means it has
// to come from a group tree. Records owned by the user survive; reassign
// them with SetOwner first if the group should keep them visible.
func (c *Client) RemoveGroupMember(ctx context.Context, user User) error {
	if err := c.checkLoggedIn(); err != nil {
		return err
	}
	if err := checkMembership(user); err != nil {
		return err
	}

	err := c.do(ctx, apiRequest{
		method: http.MethodDelete,
		path:   "/group-memberships/" + url.PathEscape(user.GroupMembershipID),
		status: http.StatusNoContent,
	}, nil)
	if err != nil {
		return err
	}

	c.logger.Info("removed group member", "user", user.String())
	return nil
}
