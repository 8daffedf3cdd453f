package config

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagbump/pkg/domain/model"
	"github.com/m-mizutani/tagbump/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
)

type localFile struct {
	Owner string `toml:"owner"`
	Repo  string `toml:"repo"`
	Token string `toml:"token"`
}

// LoadLocal reads credentials from a file for runs outside CI. Files ending
// in .toml are decoded as TOML; anything else as key=value lines:
//
//	owner=octo
//	repo=hello
//	token=ghp_xxx
func LoadLocal(path string) (*model.Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read local config",
			goerr.V("path", path),
			goerr.T(model.ErrTagConfiguration),
		)
	}

	var file localFile
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, goerr.Wrap(err, "failed to parse local config",
				goerr.V("path", path),
				goerr.T(model.ErrTagConfiguration),
			)
		}
	} else if err := parseKeyValue(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse local config",
			goerr.V("path", path),
			goerr.T(model.ErrTagConfiguration),
		)
	}

	creds := &model.Credentials{
		Repository: model.Repository{Owner: file.Owner, Name: file.Repo},
		Token:      types.GitHubToken(file.Token),
	}
	if err := creds.Validate(); err != nil {
		return nil, goerr.Wrap(err, "incomplete local config",
			goerr.V("path", path),
			goerr.T(model.ErrTagConfiguration),
		)
	}

	return creds, nil
}

func parseKeyValue(data []byte, file *localFile) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return goerr.New("line is not key=value", goerr.V("line", lineNo))
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "owner":
			file.Owner = value
		case "repo":
			file.Repo = value
		case "token":
			file.Token = value
		default:
			return goerr.New("unknown key", goerr.V("key", key), goerr.V("line", lineNo))
		}
	}

	return scanner.Err()
}
