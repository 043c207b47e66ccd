package main

import (
	"github.com/spf13/cobra"

	"github.com/avdva/ieee754"
)

func (a *app) decodeCmd() *cobra.Command {
	var (
		flipSign     bool
		flipExponent []int
		flipMantissa []int
	)
	cmd := &cobra.Command{
		Use:   "decode HEX",
		Short: "Decode an 8 or 16 digit hex encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debugf("Decoding %q.", args[0])
			s, err := a.decoder().NewSession(args[0])
			if err != nil {
				return err
			}
			if flipSign {
				s.ToggleSign()
			}
			for _, i := range flipExponent {
				if err := s.ToggleExponentBit(i); err != nil {
					return err
				}
			}
			for _, i := range flipMantissa {
				if err := s.ToggleMantissaBit(i); err != nil {
					return err
				}
			}
			d, err := s.Decode()
			if err != nil {
				return err
			}
			return a.printDecoded(d)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&flipSign, "flip-sign", false, "toggle the sign bit")
	flags.IntSliceVar(&flipExponent, "flip-exponent", nil, "toggle exponent bits, 0 is the most significant")
	flags.IntSliceVar(&flipMantissa, "flip-mantissa", nil, "toggle mantissa bits, 0 is the most significant")
	return cmd
}

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "encode [--] DECIMAL",
		Short:   "Encode a decimal number as single and double precision hex",
		Example: "  ieee754 encode 0.1\n  ieee754 encode -- -2.5e-3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debugf("Encoding %q.", args[0])
			e, err := ieee754.Encode(args[0])
			if err != nil {
				return err
			}
			if !e.Exact {
				a.log.Infof("%s is not exactly representable, stored as %s.", args[0], e.Exact64)
			}
			return a.printEncoded(e)
		},
	}
}

func (a *app) stepCmd() *cobra.Command {
	var (
		down  bool
		count int
	)
	cmd := &cobra.Command{
		Use:   "step HEX",
		Short: "Increment or decrement a hex encoding and decode every step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ieee754.Up
			if down {
				dir = ieee754.Down
			}
			s, err := a.decoder().NewSession(args[0])
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				if err := s.Step(dir); err != nil {
					return err
				}
				a.log.Debugf("Stepped %s to %s.", dir, s.Hex())
				d, err := s.Decode()
				if err != nil {
					return err
				}
				if err := a.printDecoded(d); err != nil {
					return err
				}
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&down, "down", false, "decrement instead of increment")
	flags.IntVar(&count, "count", 1, "number of steps")
	return cmd
}
