package labfolder

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// collect pages through a listing endpoint, accumulating decoded records
// until the server runs out or the caller's limit is reached.
//
// With limit L (0 meaning all) and page size P, each request asks for
// min(L, P) records and the offset advances by the amount requested. A page
// shorter than requested means the server is exhausted. When L > 0 the last
// request shrinks so the result never overshoots L. Offsets are walked in
// ascending order, so results arrive in the server's stable listing order.
func collect[T any](ctx context.Context, c *Client, path string, base url.Values, limit int) ([]T, error) {
	page := c.pageSize
	if limit > 0 && limit < page {
		page = limit
	}

	var records []T
	offset := 0
	for {
		q := url.Values{}
		for k, vs := range base {
			q[k] = vs
		}
		q.Set("limit", strconv.Itoa(page))
		q.Set("offset", strconv.Itoa(offset))

		var batch []T
		err := c.do(ctx, apiRequest{
			method: http.MethodGet,
			path:   path,
			query:  q,
			status: http.StatusOK,
		}, &batch)
		if err != nil {
			return nil, err
		}

		records = append(records, batch...)
		offset += page

		if len(batch) < page {
			break
		}
		if limit > 0 {
			if len(records) >= limit {
				break
			}
			if remaining := limit - len(records); remaining < page {
				page = remaining
			}
		}
	}
	return records, nil
}

// resolveOwner picks the owner id for a listing: the given user when
// non-nil, the authenticated user otherwise.
func (c *Client) resolveOwner(owner *User) (string, error) {
	if err := c.checkLoggedIn(); err != nil {
		return "", err
	}
	if owner == nil {
		owner = c.me
	}
	return owner.ID, nil
}

// ListFolders returns the folders owned by owner, or by the authenticated
// user when owner is nil. limit caps the number of results; 0 means all.
func (c *Client) ListFolders(ctx context.Context, owner *User, limit int) ([]Folder, error) {
	ownerID, err := c.resolveOwner(owner)
	if err != nil {
		return nil, err
	}
	return collect[Folder](ctx, c, "/folders", url.Values{"owner_id": {ownerID}}, limit)
}

// ListProjects returns the projects owned by owner, or by the authenticated
// user when owner is nil. limit caps the number of results; 0 means all.
func (c *Client) ListProjects(ctx context.Context, owner *User, limit int) ([]Project, error) {
	ownerID, err := c.resolveOwner(owner)
	if err != nil {
		return nil, err
	}
	return collect[Project](ctx, c, "/projects", url.Values{"owner_id": {ownerID}}, limit)
}

// ListEntries returns up to limit entries from owner's projects, together
// with the complete project list that scoped the query. The API only lists
// entries under an explicit project filter, so the projects are fetched in
// full regardless of limit and returned rather than thrown away. An owner
// with no projects yields no entries and no entry request.
func (c *Client) ListEntries(ctx context.Context, owner *User, limit int) ([]Entry, []Project, error) {
	projects, err := c.ListProjects(ctx, owner, 0)
	if err != nil {
		return nil, nil, err
	}
	if len(projects) == 0 {
		return nil, projects, nil
	}

	q := url.Values{}
	for _, p := range projects {
		q.Add("project_ids", p.ID)
	}
	entries, err := collect[Entry](ctx, c, "/entries", q, limit)
	if err != nil {
		return nil, nil, err
	}
	return entries, projects, nil
}
