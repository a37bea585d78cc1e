/*
 * Copyright 2025 The netswitch Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cli implements the netswitch command surface: listing and
// editing saved profiles, toggling auto-switch, selecting the target
// service, and applying a profile on demand.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/crypto/bcrypt"

	"github.com/netswitch/netswitch/pkg/applier"
	"github.com/netswitch/netswitch/pkg/models"
	"github.com/netswitch/netswitch/pkg/probe"
	"github.com/netswitch/netswitch/pkg/store"
)

// Dracula theme colors.
const (
	draculaCyan    = "#8BE9FD"
	draculaGreen   = "#50FA7B"
	draculaOrange  = "#FFB86C"
	draculaPink    = "#FF79C6"
	draculaRed     = "#FF5555"
	draculaComment = "#6272A4"
)

const bcryptCost = 12

type styles struct {
	title   lipgloss.Style
	name    lipgloss.Style
	success lipgloss.Style
	error   lipgloss.Style
	muted   lipgloss.Style
	warn    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Foreground(lipgloss.Color(draculaPink)).Bold(true),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan)).Bold(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color(draculaGreen)),
		error:   lipgloss.NewStyle().Foreground(lipgloss.Color(draculaRed)).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(draculaComment)),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color(draculaOrange)),
	}
}

// ConfigApplier is the applier surface the CLI consumes.
type ConfigApplier interface {
	Apply(ctx context.Context, cfg models.NetworkConfig, fallbackService string) (applier.Result, error)
}

// CLI bundles the command handlers' dependencies.
type CLI struct {
	Store   *store.Store
	Probe   probe.Probe
	Applier ConfigApplier
	Out     io.Writer

	styles styles
}

// New creates a CLI writing to out.
func New(st *store.Store, p probe.Probe, app ConfigApplier, out io.Writer) *CLI {
	return &CLI{
		Store:   st,
		Probe:   p,
		Applier: app,
		Out:     out,
		styles:  newStyles(),
	}
}

// Run dispatches a subcommand. args excludes the program name.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		ShowHelp(c.Out)

		return nil
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "status":
		return c.handleStatus(ctx, rest)
	case "list":
		return c.handleList(rest)
	case "add":
		return c.handleAdd(rest)
	case "remove":
		return c.handleRemove(rest)
	case "apply":
		return c.handleApply(ctx, rest)
	case "auto":
		return c.handleAuto(rest)
	case "service":
		return c.handleService(ctx, rest)
	case "set-password":
		return c.handleSetPassword(rest)
	case "help", "-help", "--help":
		ShowHelp(c.Out)

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

// checkPassword verifies the supplied password against the stored
// bcrypt hash. No stored hash means no gate.
func (c *CLI) checkPassword(password string) error {
	hash := c.Store.PasswordHash()
	if hash == "" {
		return nil
	}

	if password == "" {
		return ErrPasswordRequired
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrWrongPassword
	}

	return nil
}

func (c *CLI) handleStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(c.Out)

	if err := fs.Parse(args); err != nil {
		return err
	}

	identity := c.Probe.CurrentIdentity(ctx)

	display := identity.DisplaySSID()
	if display == "" {
		display = c.styles.muted.Render("(no network)")
	} else {
		display = c.styles.name.Render(display)
	}

	fmt.Fprintf(c.Out, "%s %s\n", c.styles.title.Render("Network:"), display)

	if identity.RouterMAC != "" {
		fmt.Fprintf(c.Out, "%s %s\n", c.styles.title.Render("Router MAC:"), identity.RouterMAC)
	}

	service := c.Store.NetworkService()
	if service != "" {
		settings := c.Probe.ServiceSettings(ctx, service)

		mode := "static"
		if settings.UseDHCP {
			mode = "DHCP"
		}

		fmt.Fprintf(c.Out, "%s %s (%s)\n", c.styles.title.Render("Service:"), service, mode)

		if settings.IPAddress != "" {
			fmt.Fprintf(c.Out, "%s %s\n", c.styles.title.Render("IP:"), settings.IPAddress)
		}

		if len(settings.DNSServers) > 0 {
			fmt.Fprintf(c.Out, "%s %s\n", c.styles.title.Render("DNS:"), strings.Join(settings.DNSServers, ", "))
		}
	}

	auto := c.styles.warn.Render("off")
	if c.Store.AutoSwitch() {
		auto = c.styles.success.Render("on")
	}

	fmt.Fprintf(c.Out, "%s %s\n", c.styles.title.Render("Auto-switch:"), auto)

	return nil
}

func (c *CLI) handleList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(c.Out)

	if err := fs.Parse(args); err != nil {
		return err
	}

	configs := c.Store.Configs()
	if len(configs) == 0 {
		fmt.Fprintln(c.Out, c.styles.muted.Render("No saved configs."))

		return nil
	}

	for _, cfg := range configs {
		fmt.Fprintln(c.Out, c.renderConfig(cfg))
	}

	return nil
}

// renderConfig formats one profile as a single line.
func (c *CLI) renderConfig(cfg models.NetworkConfig) string {
	var b strings.Builder

	b.WriteString(c.styles.name.Render(cfg.Name))

	if cfg.SSID != "" {
		b.WriteString(" [" + cfg.SSID + "]")
	}

	if cfg.RouterMAC != "" {
		// Only the MAC tail; enough to tell routers apart.
		mac := cfg.RouterMAC
		if len(mac) > 8 {
			mac = mac[len(mac)-8:]
		}

		b.WriteString(c.styles.muted.Render(" (" + mac + ")"))
	}

	if cfg.UseDHCP {
		b.WriteString(" dhcp")
	} else {
		b.WriteString(" static " + cfg.IPAddress)
	}

	if len(cfg.DNSServers) > 0 {
		b.WriteString(" dns=" + strings.Join(cfg.DNSServers, ","))
	}

	if cfg.AutoApply {
		b.WriteString(c.styles.success.Render(" auto"))
	}

	return b.String()
}

func (c *CLI) handleAdd(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(c.Out)

	var (
		name          = fs.String("name", "", "config name (required)")
		ssid          = fs.String("ssid", "", "SSID to match; empty matches any network")
		configType    = fs.String("type", "wifi", "config type: wifi or service")
		routerMAC     = fs.String("router-mac", "", "pin to a router MAC (aa:bb:cc:dd:ee:ff)")
		autoApply     = fs.Bool("auto-apply", false, "apply automatically when the network is detected")
		targetService = fs.String("target-service", "", "service to apply to (default: selected service)")
		dhcp          = fs.Bool("dhcp", true, "use DHCP")
		ip            = fs.String("ip", "", "static IP address")
		mask          = fs.String("mask", "", "static subnet mask")
		router        = fs.String("router", "", "static router address")
		dns           = fs.String("dns", "", "comma-separated DNS servers; empty clears")
		password      = fs.String("password", "", "password when a gate is set")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.checkPassword(*password); err != nil {
		return err
	}

	if *name == "" {
		return ErrEmptyName
	}

	cfg := models.NetworkConfig{
		Name:          *name,
		Type:          models.ConfigType(*configType),
		SSID:          *ssid,
		RouterMAC:     strings.ToLower(*routerMAC),
		AutoApply:     *autoApply,
		TargetService: *targetService,
		UseDHCP:       *dhcp,
		IPAddress:     *ip,
		SubnetMask:    *mask,
		Router:        *router,
	}

	if *dns != "" {
		for _, server := range strings.Split(*dns, ",") {
			if server = strings.TrimSpace(server); server != "" {
				cfg.DNSServers = append(cfg.DNSServers, server)
			}
		}
	}

	if err := c.Store.Add(cfg); err != nil {
		// The mutation stands; only persistence failed.
		fmt.Fprintln(c.Out, c.styles.warn.Render("Warning: "+err.Error()))
	}

	fmt.Fprintf(c.Out, "%s %s\n", c.styles.success.Render("Saved"), cfg.Name)

	return nil
}

func (c *CLI) handleRemove(args []string) error {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	fs.SetOutput(c.Out)

	var (
		name     = fs.String("name", "", "config name (required)")
		password = fs.String("password", "", "password when a gate is set")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.checkPassword(*password); err != nil {
		return err
	}

	if *name == "" {
		return ErrEmptyName
	}

	if err := c.Store.Remove(*name); err != nil {
		fmt.Fprintln(c.Out, c.styles.warn.Render("Warning: "+err.Error()))
	}

	fmt.Fprintf(c.Out, "%s %s\n", c.styles.success.Render("Removed"), *name)

	return nil
}

func (c *CLI) handleApply(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	fs.SetOutput(c.Out)

	var (
		name     = fs.String("name", "", "config name (required)")
		password = fs.String("password", "", "password when a gate is set")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.checkPassword(*password); err != nil {
		return err
	}

	if *name == "" {
		return ErrEmptyName
	}

	cfg, err := c.Store.Get(*name)
	if err != nil {
		return err
	}

	result, err := c.Applier.Apply(ctx, cfg, c.Store.NetworkService())
	if err != nil {
		return err
	}

	fmt.Fprintln(c.Out, c.styles.success.Render(result.Message))

	return nil
}

func (c *CLI) handleAuto(args []string) error {
	fs := flag.NewFlagSet("auto", flag.ContinueOnError)
	fs.SetOutput(c.Out)

	var (
		enable   = fs.Bool("enable", false, "enable auto-switch")
		disable  = fs.Bool("disable", false, "disable auto-switch")
		password = fs.String("password", "", "password when a gate is set")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *enable == *disable {
		return ErrAutoFlagRequired
	}

	if err := c.checkPassword(*password); err != nil {
		return err
	}

	if err := c.Store.SetAutoSwitch(*enable); err != nil {
		fmt.Fprintln(c.Out, c.styles.warn.Render("Warning: "+err.Error()))
	}

	state := "disabled"
	if *enable {
		state = "enabled"
	}

	fmt.Fprintln(c.Out, c.styles.success.Render("Auto-switch "+state))

	return nil
}

func (c *CLI) handleService(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("service", flag.ContinueOnError)
	fs.SetOutput(c.Out)

	var (
		name     = fs.String("name", "", "service to select")
		list     = fs.Bool("list", false, "list available services")
		password = fs.String("password", "", "password when a gate is set")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		selected := c.Store.NetworkService()

		for _, service := range c.Probe.ListServices(ctx) {
			marker := "  "
			if service == selected {
				marker = c.styles.success.Render("* ")
			}

			fmt.Fprintf(c.Out, "%s%s\n", marker, service)
		}

		return nil
	}

	if *name == "" {
		return ErrEmptyName
	}

	if err := c.checkPassword(*password); err != nil {
		return err
	}

	if err := c.Store.SetNetworkService(*name); err != nil {
		fmt.Fprintln(c.Out, c.styles.warn.Render("Warning: "+err.Error()))
	}

	fmt.Fprintf(c.Out, "%s %s\n", c.styles.success.Render("Selected"), *name)

	return nil
}

func (c *CLI) handleSetPassword(args []string) error {
	fs := flag.NewFlagSet("set-password", flag.ContinueOnError)
	fs.SetOutput(c.Out)

	var (
		newPassword = fs.String("new", "", "new password; empty removes the gate")
		password    = fs.String("password", "", "current password when a gate is set")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.checkPassword(*password); err != nil {
		return err
	}

	hash := ""

	if *newPassword != "" {
		generated, err := bcrypt.GenerateFromPassword([]byte(*newPassword), bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		hash = string(generated)
	}

	if err := c.Store.SetPasswordHash(hash); err != nil {
		fmt.Fprintln(c.Out, c.styles.warn.Render("Warning: "+err.Error()))
	}

	if hash == "" {
		fmt.Fprintln(c.Out, c.styles.success.Render("Password gate removed"))
	} else {
		fmt.Fprintln(c.Out, c.styles.success.Render("Password updated"))
	}

	return nil
}
