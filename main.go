package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/wanderplan/tripplanner-api/api"
	"github.com/wanderplan/tripplanner-api/external/assistant"
	"github.com/wanderplan/tripplanner-api/external/googleplaces"
	"github.com/wanderplan/tripplanner-api/external/mailrelay"
	"github.com/wanderplan/tripplanner-api/external/nominatim"
	"github.com/wanderplan/tripplanner-api/external/wikipedia"
	"github.com/wanderplan/tripplanner-api/place"
	"github.com/wanderplan/tripplanner-api/store"
)

var (
	server     *api.Server
	mongoStore store.MongoStore
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("tripplanner")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown mobile api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if mongoStore != nil {
			log.Info("Shutting down db store")
			mongoStore.Close()
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// External place sources
	geocoder := nominatim.New(
		viper.GetString("nominatim.endpoint"),
		viper.GetString("nominatim.agent"),
		httpClient)
	wiki := wikipedia.New(viper.GetString("wikipedia.endpoint"), httpClient)

	// the paid detail source takes over the whole pipeline when a key is set
	var placeSource googleplaces.PlaceSource
	if apiKey := viper.GetString("googleplaces.apikey"); apiKey != "" {
		s, err := googleplaces.New(apiKey)
		if err != nil {
			log.Panicf("create place detail client with error: %s", err)
		}
		placeSource = s
		log.WithField("prefix", "init").Info("Initialized paid place detail source")
	}

	normalizer := place.NewNormalizer(geocoder, wiki, placeSource)

	suggester := place.NewSuggester(assistant.New(
		viper.GetString("assistant.endpoint"),
		viper.GetString("assistant.key"),
		viper.GetString("assistant.model"),
		httpClient), normalizer)

	mailer := mailrelay.New(mailrelay.Config{
		Endpoint: viper.GetString("mailrelay.endpoint"),
		APIKey:   viper.GetString("mailrelay.key"),
		Sender:   viper.GetString("mailrelay.sender"),
	}, httpClient)
	log.WithField("prefix", "init").Info("Initialized external services")

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	// Init http server
	server = api.NewServer(
		mongoStore,
		normalizer,
		suggester,
		mailer)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
