package main

import (
	"fmt"

	"github.com/spf13/cobra"

	v "github.com/Gobd/inputvalidation"
)

func newAgeCmd(a *app) *cobra.Command {
	var minAge int

	cmd := &cobra.Command{
		Use:   "age",
		Short: "Ask for an age of at least --min",
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy := v.DefaultPolicy("Try again")
			policy.Pause = a.cfg.GetBool("pause")
			policy.Clear = a.cfg.GetBool("clear")
			policy.MaxAttempts = a.cfg.GetInt("max_attempts")

			c := a.console(cmd)
			r, err := v.NewReader(c, c, v.Config[int]{
				Prompt:   "Enter age",
				Bound:    v.Bounded(v.GreaterOrEqual, minAge),
				ShowHint: true,
				Policy:   policy,
			}, v.WithLogger(a.log))
			if err != nil {
				return err
			}

			age, err := r.Read(cmd.Context())
			if err != nil {
				return err
			}
			return c.WriteLine(fmt.Sprintf("Age: %d", age))
		},
	}
	cmd.Flags().IntVar(&minAge, "min", 18, "youngest accepted age")
	return cmd
}
