package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/datekeeper/internal/models"
	"github.com/dmitrijs2005/datekeeper/internal/schema"
)

// onboard collects the profile fields and replaces the single user record.
// The existing id is kept so repeated onboarding edits the same account.
func (a *App) onboard(ctx context.Context) {
	existing, err := a.store.GetUser(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	user := &models.User{ID: uuid.NewString()}
	if existing != nil {
		user.ID = existing.ID
	}

	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Your name", &user.Name},
		{"Gender", &user.Gender},
		{"Email (optional)", &user.Email},
		{"Country", &user.Preferences.Country},
		{"City", &user.Preferences.City},
		{"Zip code", &user.Preferences.ZipCode},
		{"Budget (low/medium/high)", &user.Preferences.Budget},
	}

	age, err := getSimpleText(a.reader, "Age", a.out)
	if err != nil {
		return
	}
	user.Age = models.AgeFromString(age)

	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return
		}
		*f.dest = v
	}

	if user.Preferences.Likes, err = getList(a.reader, "Likes", a.out); err != nil {
		return
	}
	if user.Preferences.Dislikes, err = getList(a.reader, "Dislikes", a.out); err != nil {
		return
	}

	if err := a.store.UpsertUser(ctx, user); err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(a.out, "profile not saved, invalid fields: %v\n", verr.Fields)
			return
		}
		fmt.Fprintf(a.out, "error saving profile: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Profile saved.")
}

func (a *App) showProfile(ctx context.Context) {
	user, err := a.store.GetUser(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if user == nil || !user.Active() {
		fmt.Fprintln(a.out, "No profile yet. Run 'onboard' first.")
		return
	}
	fmt.Fprintf(a.out, "%s (%s, %s)\n", user.Name, user.Age, user.Gender)
	fmt.Fprintf(a.out, "  %s, %s %s · budget %s\n",
		user.Preferences.City, user.Preferences.Country, user.Preferences.ZipCode, user.Preferences.Budget)
	fmt.Fprintf(a.out, "  likes: %v · dislikes: %v\n", user.Preferences.Likes, user.Preferences.Dislikes)
}

func (a *App) eraseProfile(ctx context.Context, hard bool) {
	if err := a.store.DeleteUser(ctx, hard); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if hard {
		fmt.Fprintln(a.out, "Profile record removed.")
	} else {
		fmt.Fprintln(a.out, "Profile marked deleted.")
	}
}
