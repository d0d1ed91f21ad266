// Package runner abstracts how external media tools are executed.
//
// Two interchangeable strategies implement the Runner interface: Local runs
// the tool directly from PATH, Docker runs the same tool inside a container
// with the touched host directories bind-mounted and every path argument
// translated into the container's mount namespace. The strategy for each tool
// is selected once at startup by Resolve; callers never branch on it again.
package runner
