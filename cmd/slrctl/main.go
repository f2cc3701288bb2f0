// Command slrctl traces the container growth policy, runs workloads against
// the allocator and replays scripted container and handle operations.
package main

func main() {
	execute()
}
