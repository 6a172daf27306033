package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/entrakit/groupexport/global"
	"github.com/entrakit/groupexport/prompt"
	"github.com/entrakit/groupexport/session"
)

// preflight checks the credential prerequisites before anything talks to
// the network. Without a tenant and application identity there is nothing
// to fall back to. A missing client secret can be worked around with an
// interactive browser sign-in, but only if the operator agrees; declining
// terminates the program.
func preflight(p prompt.Prompter, out io.Writer) (session.Config, error) {
	cfg := session.Config{
		TenantId:     viper.GetString(global.TenantId),
		ClientId:     viper.GetString(global.ClientId),
		ClientSecret: viper.GetString(global.ClientSecret),
	}

	var missing *multierror.Error

	if cfg.TenantId == "" {
		missing = multierror.Append(missing, fmt.Errorf("missing --%s (or %s)", global.TenantId, global.TenantIdEnv))
	}

	if cfg.ClientId == "" {
		missing = multierror.Append(missing, fmt.Errorf("missing --%s (or %s)", global.ClientId, global.ClientIdEnv))
	}

	if err := missing.ErrorOrNil(); err != nil {
		return cfg, err
	}

	if cfg.ClientSecret == "" {
		fmt.Fprintln(out, "No client secret is configured.")

		if !p.Confirm("Sign in interactively through the browser instead? [y/N] ") {
			return cfg, errors.New("no usable credentials")
		}
	}

	return cfg, nil
}
