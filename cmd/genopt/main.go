package main

import (
	"context"
	"flag"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/genopt/cmd/genopt/app"
)

func main() {
	opts := app.NewOptions()
	opts.AddFlags(pflag.CommandLine)

	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	pflag.CommandLine.AddGoFlagSet(klogFlags)
	pflag.Parse()
	defer klog.Flush()

	ctx := klog.NewContext(context.Background(), klog.Background())
	if err := app.Run(ctx, opts, os.Stdout); err != nil {
		klog.ErrorS(err, "genopt failed")
		klog.Flush()
		os.Exit(1)
	}
}
