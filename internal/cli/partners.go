package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/datekeeper/internal/models"
	"github.com/dmitrijs2005/datekeeper/internal/schema"
)

func (a *App) addPartner(ctx context.Context) {
	partner := &models.PartnerProfile{ID: uuid.NewString()}

	name, err := getSimpleText(a.reader, "Partner name", a.out)
	if err != nil {
		return
	}
	partner.Name = name

	if age, err := getSimpleText(a.reader, "Age (optional)", a.out); err != nil {
		return
	} else if age != "" {
		partner.Age = models.AgeFromString(age)
	}

	if partner.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return
	}
	if partner.Likes, err = getList(a.reader, "Likes", a.out); err != nil {
		return
	}

	phase, err := getSimpleText(a.reader, fmt.Sprintf("Relationship phase %v (optional)", models.RelationshipPhases), a.out)
	if err != nil {
		return
	}
	partner.RelationshipPhase = models.RelationshipPhase(phase)

	if err := a.store.UpsertPartner(ctx, partner); err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(a.out, "partner not saved, invalid fields: %v\n", verr.Fields)
			return
		}
		fmt.Fprintf(a.out, "error saving partner: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Partner saved with id %s.\n", partner.ID)
}

func (a *App) listPartners(ctx context.Context) {
	partners, err := a.store.GetPartners(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(partners) == 0 {
		fmt.Fprintln(a.out, "No partners yet.")
		return
	}
	for _, p := range partners {
		line := fmt.Sprintf("%s  %s", p.ID, p.Name)
		if !p.Age.IsZero() {
			line += fmt.Sprintf(" (%s)", p.Age)
		}
		if p.RelationshipPhase != "" {
			line += fmt.Sprintf(" · %s", p.RelationshipPhase)
		}
		fmt.Fprintln(a.out, line)
	}
}

func (a *App) removePartner(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: rmpartner <id>")
		return
	}
	if err := a.store.SoftDeletePartner(ctx, args[0]); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Partner removed.")
}
