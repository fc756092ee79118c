// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command thrbench compares the thread and pthread builds of a test.
//
//  ⎣ ⇨ thrbench -h
//  thrbench [flags] <test-index> <sweep-bound> <binary-dir>
//  thrbench runs binary <name> and <name>-pthread in binary-dir with
//  arguments "<x> 10" for x in 0 ... sweep-bound-1, averages the elapsed
//  time of each over a number of trials and charts the two series.
//
//  <cmd> may be
//  	list
//  	pick
//
//        --binary-output string    inherit or discard binary output (default "inherit")
//        --chart string            auto, interactive, text or png (default "auto")
//        --config string           YAML configuration file
//    -h, --help                    help for thrbench
//        --height int              chart height, 0 to pick
//        --launch-failure string   fail or absorb (default "fail")
//        --log-format string       text or json (default "text")
//        --log-level string        debug, info, warn or error (default "info")
//        --metrics-addr string     serve prometheus metrics on this address
//        --otlp-endpoint string    OTLP/gRPC trace endpoint (default "localhost:4317")
//    -o, --out string              png chart path
//        --table                   print a summary table
//        --timeout duration        max per trial duration, 0 for none
//        --traces string           none, stdout or otlp (default "none")
//    -n, --trials int              trials per variant and sweep point (default 10)
//        --width int               chart width, 0 to pick
//
//  ⎣ ⇨ thrbench list -h
//  list [binary-dir]
//  	list lists the catalog with indices, and whether both binaries
//  	exist when binary-dir is given.
//    -p, --pattern string   only list tests matching this pattern
//
//  ⎣ ⇨ thrbench pick -h
//  pick <sweep-bound> <binary-dir>
//  	pick asks for the test interactively and then runs it as
//  	thrbench does.
package main
