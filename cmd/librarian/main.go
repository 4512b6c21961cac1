// Command librarian runs library circulation commands and queries against PostgreSQL.
package main

func main() {
	Execute()
}
