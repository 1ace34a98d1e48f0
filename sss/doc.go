// Package sss implements Shamir Secret Sharing over GF(256): splitting a
// byte secret into n shares under a k-of-n threshold, with tamper-evident
// per-share and per-split metadata, and a versioned text serialization
// format.
package sss
