package cli

import (
	"context"
	"fmt"
	"strings"
)

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to datekeeper (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, "dk> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "onboard":
			a.onboard(ctx)
		case "profile":
			a.showProfile(ctx)
		case "erase":
			a.eraseProfile(ctx, len(args) > 0 && args[0] == "hard")
		case "addpartner":
			a.addPartner(ctx)
		case "partners":
			a.listPartners(ctx)
		case "rmpartner":
			a.removePartner(ctx, args)
		case "phase":
			a.setPhase(ctx, args)
		case "exps":
			a.setExperiences(ctx)
		case "when":
			a.setDateStart(ctx, args)
		case "generate":
			a.generateRecommendations(ctx)
		case "recs":
			a.listRecommendations(ctx)
		case "wipe":
			a.wipe(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintf(a.out, "unknown command %q, type 'help'\n", cmd)
		}
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `Commands:
  onboard            create or replace your profile
  profile            show your profile
  erase [hard]       soft-delete your profile (hard: remove the record)
  addpartner         add or update a partner
  partners           list active partners
  rmpartner <id>     soft-delete a partner
  phase <phase>      set the relationship phase for this session
  exps               pick desired experiences
  when <rfc3339>     set the planned date start time
  generate           ask the guide for venue recommendations
  recs               list saved recommendations
  wipe               clear all local data
  exit               quit`)
}
