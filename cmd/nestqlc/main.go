// Command nestqlc is the CLI wrapper external collaborator: it compiles a
// nestql query and either dumps the request it would send or issues it
// against an OpenSearch/Elasticsearch _search endpoint. Reproduces the
// Python original's cli.py surface.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/nestql/nestql"
)

var (
	flags        = pflag.NewFlagSet("nestqlc", pflag.ContinueOnError)
	flagIncludes = flags.StringP("includes", "i", "", "comma-separated _source fields to include")
	flagDump     = flags.BoolP("dump", "d", false, "print the request instead of sending it")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: nestqlc [OPTIONS] INDEX QUERY\n")
	flags.PrintDefaults()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

func main() {
	flags.Usage = usage
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	args := flags.Args()
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	index, queryString := args[0], args[1]

	cfg, err := loadTransportConfig()
	if err != nil {
		fail(err)
	}

	if err := search(cfg, index, queryString, *flagDump, *flagIncludes); err != nil {
		fail(err)
	}
}

func search(cfg transportConfig, index, queryString string, dump bool, sourceIncludes string) error {
	esQuery, err := nestql.Parse(queryString)
	if err != nil {
		return err
	}
	body := map[string]any{"query": esQuery}

	if dump {
		suffix := ""
		if sourceIncludes != "" {
			suffix = "?_source_includes=" + sourceIncludes
		}
		pretty, err := json.MarshalIndent(body, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("GET %s/_search%s \n%s\n", index, suffix, pretty)
		return nil
	}

	return execSearch(cfg, index, body, sourceIncludes)
}

func execSearch(cfg transportConfig, index string, body map[string]any, sourceIncludes string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	scheme := "http"
	if cfg.TLS {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s:%d/%s/_search", scheme, cfg.Host, cfg.Port, index)
	if sourceIncludes != "" {
		url += "?_source_includes=" + sourceIncludes
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.Username != "" {
		req.SetBasicAuth(cfg.Username, cfg.Password)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}
