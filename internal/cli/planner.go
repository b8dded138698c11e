package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/datekeeper/internal/guide"
	"github.com/dmitrijs2005/datekeeper/internal/models"
	"github.com/dmitrijs2005/datekeeper/internal/schema"
)

func (a *App) setPhase(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintf(a.out, "usage: phase <%s>\n", joinPhases())
		return
	}
	phase := models.RelationshipPhase(args[0])
	if !phase.Valid() {
		fmt.Fprintf(a.out, "unknown phase %q, expected one of: %s\n", args[0], joinPhases())
		return
	}
	if err := a.store.UpsertSession(ctx, models.SessionPatch{SelectedPhase: &phase}); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Phase set to %s.\n", phase)
}

func (a *App) setExperiences(ctx context.Context) {
	fmt.Fprintln(a.out, "Pick experiences by number, comma-separated:")
	for i, e := range models.DateExperiences {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, e)
	}
	line, err := getSimpleText(a.reader, "Your picks", a.out)
	if err != nil {
		return
	}

	exps := []models.DateExperience{}
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > len(models.DateExperiences) {
			fmt.Fprintf(a.out, "ignoring %q\n", part)
			continue
		}
		exps = append(exps, models.DateExperiences[n-1])
	}

	if err := a.store.UpdateDesiredExperiences(ctx, exps); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Experiences set: %v\n", exps)
}

func (a *App) setDateStart(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: when <rfc3339>, e.g. when 2024-05-01T19:30:00-05:00")
		return
	}
	if err := a.store.UpdateDateStartISO(ctx, args[0]); err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(a.out, "not a valid timestamp: %v\n", verr.Fields)
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Date start set to %s.\n", args[0])
}

// generateRecommendations builds the guide request from the stored profile,
// partner, and session, persists what comes back, and prints it.
func (a *App) generateRecommendations(ctx context.Context) {
	user, err := a.store.GetUser(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if user == nil {
		fmt.Fprintln(a.out, "Onboard first so the guide knows your preferences.")
		return
	}
	session, err := a.store.GetSession(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	req := guide.GenerationRequest{
		Goal:      guide.AnyGoal,
		City:      user.Preferences.City,
		Country:   user.Preferences.Country,
		ZipCode:   user.Preferences.ZipCode,
		Budget:    user.Preferences.Budget,
		UserLikes: user.Preferences.Likes,
	}
	if session != nil {
		req.Phase = session.SelectedPhase
		if len(session.DesiredExperiences) > 0 {
			req.Goal = string(session.DesiredExperiences[0])
		}
		if session.CurrentPartnerID != nil {
			if partner := a.findPartner(ctx, *session.CurrentPartnerID); partner != nil {
				req.PartnerName = partner.Name
				req.PartnerLikes = partner.Likes
			}
		}
	}

	fmt.Fprintln(a.out, "Asking the guide...")
	recs, err := a.guide.GenerateRecommendations(ctx, req)
	if err != nil {
		if errors.Is(err, guide.ErrMalformedResponse) {
			fmt.Fprintln(a.out, "Couldn't get recommendations this time. Please try again.")
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.store.AddRecommendations(ctx, recs); err != nil {
		fmt.Fprintf(a.out, "error saving recommendations: %v\n", err)
		return
	}
	a.printRecommendations(recs, guide.Filters{
		Budget: user.Preferences.Budget,
		Goal:   req.Goal,
		Likes:  user.Preferences.Likes,
	}, session)
}

func (a *App) listRecommendations(ctx context.Context) {
	recs, err := a.store.GetRecommendations(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No recommendations yet. Try 'generate'.")
		return
	}
	a.printRecommendations(recs, guide.Filters{Budget: guide.AnyBudget, Goal: guide.AnyGoal}, nil)
}

func (a *App) printRecommendations(recs []models.Recommendation, filters guide.Filters, session *models.Session) {
	for _, r := range recs {
		fmt.Fprintf(a.out, "%s · %s · %s · best at %s\n", r.Title, r.Location, r.EstimatedCost, r.BestTime)
		tip := guide.BuildGuide(r, filters, session)
		fmt.Fprintf(a.out, "  %s\n  Tweak: %s\n", tip.Why, tip.Tweak)
	}
}

func (a *App) wipe(ctx context.Context) {
	answer, err := getSimpleText(a.reader, "This removes all data. Type 'yes' to confirm", a.out)
	if err != nil || answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	if err := a.store.ClearAll(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "All data cleared.")
}

func (a *App) findPartner(ctx context.Context, id string) *models.PartnerProfile {
	partners, err := a.store.GetPartners(ctx)
	if err != nil {
		return nil
	}
	for i := range partners {
		if partners[i].ID == id {
			return &partners[i]
		}
	}
	return nil
}

func joinPhases() string {
	parts := make([]string, len(models.RelationshipPhases))
	for i, p := range models.RelationshipPhases {
		parts[i] = string(p)
	}
	return strings.Join(parts, "|")
}
