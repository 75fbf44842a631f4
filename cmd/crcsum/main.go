/* crcsum - compute and combine CRC digests for arbitrary CRC configurations */
package main

/*------------------------------------------------------------------
 *
 * Purpose:	Command line front end for the crc engine.
 *
 * Usage:	Described in usage().
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/doismellburning/crcbox/internal/crc"
	"github.com/doismellburning/crcbox/internal/crcmetrics"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("crcsum", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	template := flags.StringP("template", "t", "", "Catalogue template name, e.g. crc-32.")
	width := flags.Uint("width", 0, "CRC width in bits, 1-64 (with --poly, overrides --template).")
	poly := flags.String("poly", "", "Generator polynomial, hex.")
	init := flags.String("init", "0", "Initial register value, hex.")
	refin := flags.Bool("refin", false, "Reflect each input byte before mixing.")
	refout := flags.Bool("refout", false, "Reflect the final register before xorout.")
	xorout := flags.String("xorout", "0", "Final XOR mask, hex.")
	method := flags.StringP("method", "m", string(crc.DefaultMethod), "Kernel: bitwise, bytewise or wordwise.")
	configPath := flags.String("config", "", "Load a Configuration from a YAML file.")
	list := flags.Bool("list", false, "List catalogue template names and exit.")
	combine := flags.String("combine", "", "Combine mode: CRC1_HEX,CRC2_HEX,LEN2 of a second buffer.")
	zeroBytes := flags.Uint64("zero-bytes", 0, "Feed this many zero bytes into the digest before reading input.")
	zeroBits := flags.Uint64("zero-bits", 0, "Feed this many zero bits into the digest before reading input.")
	metricsAddr := flags.String("metrics-addr", "", "If set, serve Prometheus metrics on this address (e.g. :9100) while running.")
	verbose := flags.CountP("verbose", "v", "Increase log verbosity (-v, -vv).")
	help := flags.Bool("help", false, "Display help text.")

	flags.Usage = func() { usage(stderr, flags) }

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *help {
		flags.Usage()
		return 0
	}

	logger := log.NewWithOptions(stderr, log.Options{Level: verbosityToLevel(*verbose)})

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, logger)
	}

	if *list {
		printCatalogue(stdout)
		return 0
	}

	cfg, meth, err := resolveConfig(*configPath, *template, *width, *poly, *init, *refin, *refout, *xorout, *method)
	if err != nil {
		logger.Error("resolving configuration", "err", err)
		return 1
	}

	if *combine != "" {
		return runCombine(cfg, meth, *combine, stdout, logger)
	}

	engine, err := crc.New(cfg, meth)
	if err != nil {
		logger.Error("building engine", "err", err)
		return 1
	}

	if *zeroBytes > 0 {
		engine.FeedZeroBytes(*zeroBytes)
	}
	if *zeroBits > 0 {
		engine.FeedZeroBits(*zeroBits)
	}

	buf, err := io.ReadAll(stdin)
	if err != nil {
		logger.Error("reading input", "err", err)
		return 1
	}
	engine.Update(buf)

	fmt.Fprintln(stdout, engine.HexDigest())
	return 0
}

func resolveConfig(configPath, template string, width uint, polyHex, initHex string, refin, refout bool, xoroutHex, methodName string) (crc.Configuration, crc.Method, error) {
	if configPath != "" {
		fc, err := loadFileConfig(configPath)
		if err != nil {
			return crc.Configuration{}, "", err
		}
		cfg, err := fc.resolve()
		if err != nil {
			return crc.Configuration{}, "", err
		}
		meth := crc.DefaultMethod
		if fc.Method != nil {
			meth, err = crc.ParseMethod(*fc.Method)
			if err != nil {
				return crc.Configuration{}, "", err
			}
		}
		return cfg, meth, nil
	}

	meth, err := crc.ParseMethod(methodName)
	if err != nil {
		return crc.Configuration{}, "", err
	}

	if width == 0 && polyHex == "" {
		if template == "" {
			return crc.Configuration{}, "", fmt.Errorf("one of --template, --config, or --width/--poly is required")
		}
		cfg, err := crc.Lookup(template)
		return cfg, meth, err
	}

	poly, err := parseHexUint64(polyHex)
	if err != nil {
		return crc.Configuration{}, "", fmt.Errorf("--poly: %w", err)
	}
	initVal, err := parseHexUint64(initHex)
	if err != nil {
		return crc.Configuration{}, "", fmt.Errorf("--init: %w", err)
	}
	xoroutVal, err := parseHexUint64(xoroutHex)
	if err != nil {
		return crc.Configuration{}, "", fmt.Errorf("--xorout: %w", err)
	}

	cfg, err := crc.NewConfiguration(width, poly, initVal, refin, refout, xoroutVal)
	return cfg, meth, err
}

func parseHexUint64(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 16, 64)
}

func runCombine(cfg crc.Configuration, meth crc.Method, spec string, stdout io.Writer, logger *log.Logger) int {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		logger.Error("--combine wants CRC1_HEX,CRC2_HEX,LEN2")
		return 2
	}

	c1, err := parseHexUint64(parts[0])
	if err != nil {
		logger.Error("parsing first combine digest", "err", err)
		return 2
	}
	c2, err := parseHexUint64(parts[1])
	if err != nil {
		logger.Error("parsing second combine digest", "err", err)
		return 2
	}
	len2, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		logger.Error("parsing combine length", "err", err)
		return 2
	}

	engine, err := crc.New(cfg, meth)
	if err != nil {
		logger.Error("building engine", "err", err)
		return 1
	}

	combined, err := engine.Combine(c1, c2, len2)
	if err != nil {
		logger.Error("combining digests", "err", err)
		return 1
	}

	fmt.Fprintln(stdout, crc.FormatHex(combined, cfg.Width))
	return 0
}

func printCatalogue(w io.Writer) {
	for _, name := range crc.TemplateNames() {
		cfg, err := crc.Lookup(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%-20s width=%-3d poly=0x%x init=0x%x refin=%-5t refout=%-5t xorout=0x%x\n",
			name, cfg.Width, cfg.Poly, cfg.Init, cfg.RefIn, cfg.RefOut, cfg.XorOut)
	}
}

func verbosityToLevel(v int) log.Level {
	switch {
	case v >= 2:
		return log.DebugLevel
	case v == 1:
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}

func serveMetrics(addr string, logger *log.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(crcmetrics.Registry, promhttp.HandlerOpts{}))
	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil { //nolint:gosec
		logger.Error("metrics server exited", "err", err)
	}
}

func usage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintf(w, "crcsum - compute and combine CRC digests\n\n")
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  crcsum --template crc-32 < file\n")
	fmt.Fprintf(w, "  crcsum --width 32 --poly 0x04C11DB7 --init 0xFFFFFFFF --refin --refout --xorout 0xFFFFFFFF < file\n")
	fmt.Fprintf(w, "  crcsum --template crc-32 --list\n")
	fmt.Fprintf(w, "  crcsum --template crc-32 --combine CRC1_HEX,CRC2_HEX,LEN2\n")
	fmt.Fprintf(w, "\n")
	flags.PrintDefaults()
}
