package leadsink

import (
	"bufio"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	leadstore "github.com/payaana/website/internal/app/store/leads"
	"github.com/payaana/website/internal/app/system/mailer"
	"github.com/payaana/website/internal/domain/models"
	"github.com/payaana/website/internal/testutil"
	"go.uber.org/zap"
)

func TestSourceLabel(t *testing.T) {
	tests := []struct {
		source models.LeadSource
		want   string
	}{
		{models.LeadSourceContact, "Contact form"},
		{models.LeadSourcePackage, "Package inquiry"},
		{models.LeadSourceService, "Service inquiry"},
		{"unknown", "Contact form"},
	}

	for _, tt := range tests {
		if got := SourceLabel(tt.source); got != tt.want {
			t.Errorf("SourceLabel(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestLogSink_NeverFails(t *testing.T) {
	sink := LogSink{Logger: zap.NewNop()}
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := sink.Deliver(ctx, models.Lead{
		Name: "Asha Nair", Email: "asha@example.com", Source: models.LeadSourceContact,
	})
	if err != nil {
		t.Errorf("LogSink.Deliver() error = %v, want nil", err)
	}
}

func TestStoreSink_PersistsLead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := leadstore.New(db)
	sink := StoreSink{Store: store}
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := sink.Deliver(ctx, models.Lead{
		Name: "Ravi Kumar", Email: "ravi@example.com", Source: models.LeadSourcePackage,
		PackageName: "Kerala Backwaters",
	})
	if err != nil {
		t.Fatalf("StoreSink.Deliver() error = %v", err)
	}

	leads, err := store.List(ctx, leadstore.QueryFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(leads) != 1 || leads[0].PackageName != "Kerala Backwaters" {
		t.Errorf("List() = %v, want the delivered lead", leads)
	}
}

// fakeSMTPServer accepts one SMTP delivery on a loopback port and sends
// the DATA payload on the returned channel.
func fakeSMTPServer(t *testing.T) (host string, port int, messages <-chan string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	ch := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		write := func(s string) { conn.Write([]byte(s + "\r\n")) }

		write("220 fake ready")
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			cmd := strings.ToUpper(strings.TrimSpace(line))
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"),
				strings.HasPrefix(cmd, "MAIL"), strings.HasPrefix(cmd, "RCPT"):
				write("250 ok")
			case strings.HasPrefix(cmd, "DATA"):
				write("354 go")
				var data strings.Builder
				for {
					dl, err := r.ReadString('\n')
					if err != nil {
						return
					}
					if strings.TrimRight(dl, "\r\n") == "." {
						break
					}
					data.WriteString(dl)
				}
				ch <- data.String()
				write("250 queued")
			case strings.HasPrefix(cmd, "QUIT"):
				write("221 bye")
				return
			default:
				write("250 ok")
			}
		}
	}()

	hostStr, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	p, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse port: %v", err)
	}
	return hostStr, p, ch
}

func TestMailSink_DeliversNotification(t *testing.T) {
	host, port, messages := fakeSMTPServer(t)

	m := mailer.New(mailer.Config{
		Host:     host,
		Port:     port,
		From:     "noreply@payaana.in",
		FromName: "Payaana Holidays",
	}, zap.NewNop())
	sink := MailSink{Mailer: m, Inbox: "sales@payaana.in", SiteName: models.DefaultSiteName}

	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := sink.Deliver(ctx, models.Lead{
		Name: "Asha Nair", Email: "asha@example.com", Phone: "+91 98765 43210",
		Source: models.LeadSourcePackage, PackageName: "Kerala Backwaters",
		Travelers: "2 adults", TravelDate: "2026-10-12",
	})
	if err != nil {
		t.Fatalf("MailSink.Deliver() error = %v", err)
	}

	var msg string
	select {
	case msg = <-messages:
	case <-time.After(5 * time.Second):
		t.Fatal("no message reached the smtp server")
	}

	for _, want := range []string{
		"To: sales@payaana.in",
		"Subject: Payaana Holidays: new inquiry from Asha Nair",
		"Package inquiry",
		"Kerala Backwaters",
		"asha@example.com",
		"2 adults",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("notification missing %q", want)
		}
	}
}
