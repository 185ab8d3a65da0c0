// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/flatdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for flatdiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_flatdiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "cmp completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}

    case "$cmd" in
        cmp)
            local opts="--color -c --context -C --dump --format -f --label-a --label-b --path -p --style -s --summary --type -t"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            return 0
            ;;
    esac

    case "$prev" in
        --style|-s)
            COMPREPLY=( $(compgen -W "table unified context" -- "$cur") )
            return 0
            ;;
        --type|-t)
            COMPREPLY=( $(compgen -W "auto text data" -- "$cur") )
            return 0
            ;;
        --format|-f)
            COMPREPLY=( $(compgen -W "auto text json yaml csv xlsx" -- "$cur") )
            return 0
            ;;
        --dump)
            COMPREPLY=( $(compgen -W "spew yaml" -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise, we're on one of the two inputs; complete files
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _flatdiff flatdiff
`

const zshCompletionScript = `#compdef flatdiff

_flatdiff() {
  local -a cmds
  cmds=(
    'cmp:compare two inputs side by side'
    'completion:generate shell completion script'
  )

  _arguments -C \
    '(-v --version)'{-v,--version}'[version info]' \
    '1: :->cmd' \
    '*:: :->args'

  case $state in
    cmd)
      _describe 'command' cmds
      return
      ;;
  esac

  case $words[1] in
    cmp)
      _arguments -C \
        '(-c --color)'{-c,--color}'[color changed rows]' \
        '(-C --context)'{-C,--context}'[unchanged lines around changes]:lines' \
        '--dump[serializer for values that are not flat]:dumper:(spew yaml)' \
        '(-f --format)'{-f,--format}'[input format]:format:(auto text json yaml csv xlsx)' \
        '--label-a[left column heading]:label' \
        '--label-b[right column heading]:label' \
        '(-p --path)'{-p,--path}'[dot path into structured input]:path' \
        '(-s --style)'{-s,--style}'[report style]:style:(table unified context)' \
        '--summary[print a count of changed lines]' \
        '(-t --type)'{-t,--type}'[line numbering]:type:(auto text data)' \
        '1:got:_files' \
        '2:expected:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _flatdiff flatdiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Metadata["meta"].(meta.Meta).Out()

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(out, bashCompletionScript)
	case "zsh":
		fmt.Fprint(out, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(out, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(out, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: flatdiff completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "flatdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
