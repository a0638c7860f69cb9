package callsapi

import (
	"encoding/json"
	"strings"
)

const paginatedCallsQuery = `query PaginatedCalls($offset: Float, $limit: Float) {
  paginatedCalls(offset: $offset, limit: $limit) {
    totalCount
    hasNextPage
    nodes {
      ...CallFields
    }
  }
}
` + callFieldsFragment

const callQuery = `query Call($id: ID!) {
  call(id: $id) {
    ...CallFields
  }
}
` + callFieldsFragment

const loginMutation = `mutation Login($input: LoginInput!) {
  login(input: $input) {
    access_token
    refresh_token
    user {
      id
      username
    }
  }
}`

const callFieldsFragment = `fragment CallFields on Call {
  id
  direction
  from
  to
  duration
  is_archived
  call_type
  via
  created_at
  notes {
    id
    content
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError is one entry of a GraphQL errors array.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

func (e GraphQLError) Error() string {
	return e.Message
}

func (e GraphQLError) unauthorized() bool {
	return strings.Contains(strings.ToLower(e.Message), "unauthorized")
}

func joinMessages(errs []GraphQLError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Session is the result of a successful login.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}
