// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package plot presents sweep results as line charts.
//
// A Chart is built from a bench.Result with FromResult and handed to a
// Presenter: Text writes a utf8 plot, PNG writes an image file and Viewer
// shows the plot full screen in a terminal until it is dismissed.  Select
// picks one according to the configured mode and whether stdout is a
// terminal.
package plot
