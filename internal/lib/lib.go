// Packages lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains the AWS-facing clients (STS identity resolution,
// Connect Cases) and shared utilities.
package lib
