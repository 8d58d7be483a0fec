// Copyright 2026 The Odoo Ninja Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/odoo-ninja/odoo-ninja/cmd/odoo-ninja/cli"
)

// AttachmentsCommand lists the files attached to a record.
func AttachmentsCommand(model Model) *cli.Command {
	var params outputParams

	return &cli.Command{
		Name:    "attachments",
		Summary: fmt.Sprintf("List the files attached to a %s", model.Display),
		Usage:   fmt.Sprintf("odoo-ninja %s attachments <id> [flags]", model.CommandName),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("attachments", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: %s attachments <id>", model.CommandName)
			}
			id, err := parseID(model, args[0])
			if err != nil {
				return err
			}

			client, err := params.Connect()
			if err != nil {
				return err
			}

			attachments, err := client.ListAttachments(model.Name, id)
			if err != nil {
				return commandError(err)
			}

			if done, err := params.EmitJSON(attachments); done {
				return err
			}

			if len(attachments) == 0 {
				fmt.Printf("no attachments on %s %d\n", model.Display, id)
				return nil
			}
			return writeAttachments(attachments)
		},
	}
}

type downloadParams struct {
	cli.Connection
	Output string `flag:"output,o" desc:"file or directory to write to (default: the attachment's name)"`
}

// DownloadCommand fetches one attachment by its attachment ID (as
// printed by the attachments command).
func DownloadCommand(model Model) *cli.Command {
	var params downloadParams

	return &cli.Command{
		Name:    "download",
		Summary: "Download one attachment by its attachment ID",
		Usage:   fmt.Sprintf("odoo-ninja %s download <attachment-id> [flags]", model.CommandName),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("download", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: %s download <attachment-id>", model.CommandName)
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return cli.Validation("%q is not a valid attachment ID", args[0])
			}

			client, err := params.Connect()
			if err != nil {
				return err
			}

			name, data, err := client.DownloadAttachment(id)
			if err != nil {
				return commandError(err)
			}

			// The server controls the name; never let it escape the
			// target directory.
			path := params.Output
			if path == "" {
				path = filepath.Base(name)
			} else if info, err := os.Stat(path); err == nil && info.IsDir() {
				path = filepath.Join(path, filepath.Base(name))
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return cli.Internal("writing %s: %v", path, err)
			}

			fmt.Printf("wrote %s (%s)\n", path, humanize.Bytes(uint64(len(data))))
			return nil
		},
	}
}

type downloadAllParams struct {
	cli.Connection
	Dir string `flag:"dir,d" default:"." desc:"directory to write into"`
	Ext string `flag:"ext" desc:"only download files with this extension (e.g. pdf)"`
}

// DownloadAllCommand fetches every attachment of a record into a
// directory.
func DownloadAllCommand(model Model) *cli.Command {
	var params downloadAllParams

	return &cli.Command{
		Name:    "download-all",
		Summary: fmt.Sprintf("Download every attachment of a %s", model.Display),
		Usage:   fmt.Sprintf("odoo-ninja %s download-all <id> [flags]", model.CommandName),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("download-all", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("usage: %s download-all <id>", model.CommandName)
			}
			id, err := parseID(model, args[0])
			if err != nil {
				return err
			}

			client, err := params.Connect()
			if err != nil {
				return err
			}

			attachments, err := client.ListAttachments(model.Name, id)
			if err != nil {
				return commandError(err)
			}
			if params.Ext != "" {
				suffix := "." + strings.TrimPrefix(strings.ToLower(params.Ext), ".")
				filtered := attachments[:0]
				for _, attachment := range attachments {
					if strings.HasSuffix(strings.ToLower(attachment.Name), suffix) {
						filtered = append(filtered, attachment)
					}
				}
				attachments = filtered
			}
			if len(attachments) == 0 {
				fmt.Printf("no attachments on %s %d\n", model.Display, id)
				return nil
			}

			if err := os.MkdirAll(params.Dir, 0755); err != nil {
				return cli.Internal("creating %s: %v", params.Dir, err)
			}

			// One bad attachment should not abort the rest.
			var failed int
			for _, attachment := range attachments {
				name, data, err := client.DownloadAttachment(attachment.ID)
				if err != nil {
					fmt.Fprintf(os.Stderr, "warning: attachment %d: %v\n", attachment.ID, err)
					failed++
					continue
				}
				path := filepath.Join(params.Dir, filepath.Base(name))
				if err := os.WriteFile(path, data, 0644); err != nil {
					fmt.Fprintf(os.Stderr, "warning: writing %s: %v\n", path, err)
					failed++
					continue
				}
				fmt.Printf("wrote %s (%s)\n", path, humanize.Bytes(uint64(len(data))))
			}
			if failed > 0 {
				return cli.Transient("%d of %d attachment(s) failed", failed, len(attachments))
			}
			return nil
		},
	}
}

type attachParams struct {
	cli.Connection
	Name string `flag:"name" desc:"attachment name (default: the file's base name)"`
}

// AttachCommand uploads a local file as an attachment.
func AttachCommand(model Model) *cli.Command {
	var params attachParams

	return &cli.Command{
		Name:    "attach",
		Summary: fmt.Sprintf("Attach a local file to a %s", model.Display),
		Usage:   fmt.Sprintf("odoo-ninja %s attach <id> <file> [flags]", model.CommandName),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("attach", &params)
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return cli.Validation("usage: %s attach <id> <file>", model.CommandName)
			}
			id, err := parseID(model, args[0])
			if err != nil {
				return err
			}
			file := args[1]

			data, err := os.ReadFile(file)
			if err != nil {
				return cli.Validation("reading %s: %v", file, err)
			}
			name := params.Name
			if name == "" {
				name = filepath.Base(file)
			}

			client, err := params.Connect()
			if err != nil {
				return err
			}

			attachmentID, err := client.CreateAttachment(model.Name, id, name, data)
			if err != nil {
				return commandError(err)
			}

			fmt.Printf("attached %s as attachment %d on %s %d\n", name, attachmentID, model.Display, id)
			fmt.Println(client.RecordURL(model.Name, id))
			return nil
		},
	}
}
