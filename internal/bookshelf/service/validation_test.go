package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterInputValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    RegisterInput
		field string
	}{
		{"ok", RegisterInput{"alice", "alice@example.com", "password123"}, ""},
		{"short username", RegisterInput{"al", "alice@example.com", "password123"}, "username"},
		{"username charset", RegisterInput{"al ice", "alice@example.com", "password123"}, "username"},
		{"long username", RegisterInput{strings.Repeat("a", 31), "alice@example.com", "password123"}, "username"},
		{"bad email", RegisterInput{"alice", "alice@example", "password123"}, "email"},
		{"short password", RegisterInput{"alice", "alice@example.com", "pass1"}, "password"},
		{"password without digit", RegisterInput{"alice", "alice@example.com", "passwordonly"}, "password"},
		{"password without letter", RegisterInput{"alice", "alice@example.com", "1234567890"}, "password"},
		{"password over bcrypt limit", RegisterInput{"alice", "alice@example.com", "a1" + strings.Repeat("x", 71)}, "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.field == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Contains(t, verr.Details(), tc.field)
		})
	}
}

func TestAuthorInputValidate(t *testing.T) {
	t.Parallel()

	in := AuthorInput{FirstName: "J", LastName: "Tolkien", Nationality: "UK", Image: "http://x.example/a.gif"}
	err := in.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"firstName", "nationality"}, fieldNames(verr))

	in = AuthorInput{FirstName: "JRR", LastName: "Tolkien", Nationality: "British"}
	in.normalize()
	require.NoError(t, in.Validate())
}

func TestBookInputValidate(t *testing.T) {
	t.Parallel()

	base := BookInput{Title: "Dune", AuthorID: "a1", Description: "Spice and sand worms.", Price: 9.99, Cover: "hard cover"}
	require.NoError(t, base.Validate())

	cases := map[string]func(*BookInput){
		"title":       func(b *BookInput) { b.Title = "Du" },
		"author":      func(b *BookInput) { b.AuthorID = "" },
		"description": func(b *BookInput) { b.Description = "short" },
		"price":       func(b *BookInput) { b.Price = 9.999 },
		"cover":       func(b *BookInput) { b.Cover = "paperback" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			in := base
			mutate(&in)

			var verr *ValidationError
			require.ErrorAs(t, in.Validate(), &verr)
			require.Equal(t, []string{field}, fieldNames(verr))
		})
	}

	t.Run("non-positive price", func(t *testing.T) {
		in := base
		in.Price = 0
		require.Error(t, in.Validate())
		in.Price = -1
		require.Error(t, in.Validate())
	})
}

func fieldNames(v *ValidationError) []string {
	out := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		out = append(out, f.Field)
	}
	return out
}
