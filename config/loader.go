package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// load decodes the first <name>.yaml found in dirs into out, then layers the
// process environment on top.
func load(out any, name string, dirs ...string) error {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	known := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, known), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return errors.Wrap(err, "read environment")
	}

	err = k.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	})

	return errors.Wrapf(err, "decode %s", path)
}

func findConfigFile(filename string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "working directory")
	}

	for _, dir := range dirs {
		candidate := filepath.Join(wd, dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found under %s in %v", filename, wd, dirs)
}

// canonicalizeEnvKey maps an env var onto the YAML key path it overrides by
// walking the loaded tree and ignoring case and separators, so
// POSTGRES_MASTER_USERNAME becomes postgres.master.userName. Segments with no
// YAML counterpart are kept lower-cased.
func canonicalizeEnvKey(envKey string, tree map[string]any) string {
	var path []string
	node := tree

	for _, part := range strings.Split(strings.ToLower(envKey), "_") {
		if part == "" {
			continue
		}

		key, child, ok := matchKey(node, part)
		if !ok {
			key, child = part, nil
		}
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func matchKey(node map[string]any, part string) (string, map[string]any, bool) {
	want := foldKey(part)
	for key, value := range node {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... until a host or port is missing.
func replicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for n := 0; ; n++ {
		get := func(field string) string {
			return os.Getenv("POSTGRES_REPLICAS_" + strconv.Itoa(n) + "_" + field)
		}

		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
