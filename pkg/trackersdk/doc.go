/*
Package trackersdk is the client SDK for the Balco production tracker service.

# Client vs Session

  - Client: unauthenticated operations (health, registration, login)
  - Session: operations that need a signed-in user

Create a Client and sign in to obtain a Session:

	client := trackersdk.NewClient("http://localhost:8080")

	// Register an account. Role and department are optional.
	user, err := client.Register(ctx, trackersdk.RegisterRequest{
		Name:     "Ayşe",
		Email:    "ayse@balco.com",
		Password: "secret123",
	})

	// Exchange credentials for a session token.
	session, err := client.Login(ctx, "ayse@balco.com", "secret123")

Use the Session for everything behind authentication:

	me, err := session.Me(ctx)
	types, err := session.ListProductTypes(ctx)
	rec, err := session.CreateRecord(ctx, trackersdk.CreateRecordRequest{...})
	summary, err := session.Summary(ctx)

Catalog writes need the admin role; the server answers 403 otherwise.

# Errors

Every non-2xx response is returned as *APIError carrying the status code, the
server message and, for validation failures, the rejected fields:

	_, err := client.Register(ctx, req)
	var apiErr *trackersdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
		for field, msg := range apiErr.Fields {
			...
		}
	}

A failed login is always reported as ErrInvalidCredentials, whatever the
reason on the server side.

# Sessions

Session tokens are not refreshed. Once ExpiresAt has passed the server
rejects the token with 401 and the caller has to Login again.
*/
package trackersdk
