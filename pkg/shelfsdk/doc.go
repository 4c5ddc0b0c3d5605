// Package shelfsdk is a Go client for the bookshelf API.
//
// The wire types in this package are also the ones the server encodes, so a
// response decoded here has exactly the shape the handlers wrote.
//
//	client := shelfsdk.NewClient("http://localhost:3000", os.Getenv("API_KEY"))
//
//	session, err := client.Login(ctx, shelfsdk.LoginRequest{
//		Email:    "alice@example.com",
//		Password: "password123",
//	})
//	if err != nil {
//		var apiErr *shelfsdk.APIError
//		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
//			// bad credentials
//		}
//		return err
//	}
//
//	books, err := session.ListBooks(ctx, 1, 10)
//
// Every failing call returns an *APIError carrying the HTTP status, the
// envelope message and any per-field validation details.
package shelfsdk
