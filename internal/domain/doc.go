// Package domain holds the model shared by every layer of primer: examples,
// check failures, run reports and configuration.
//
// Nothing here touches the filesystem, SQL drivers or terminal output;
// adapters under infra/ and ui/ translate to and from these types.
package domain
